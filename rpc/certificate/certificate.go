// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS setup for the client listeners
package certificate

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/orderd/fault"
	"github.com/bitmark-inc/orderd/util"
)

// validity of a generated certificate
const validity = 10 * 365 * 24 * time.Hour

// Get - verify a PEM certificate and key and return a server
// configuration and the certificate fingerprint
func Get(log *logger.L, name string, certificate string, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// ReadFiles - load a PEM certificate and key from files
func ReadFiles(certificateFileName string, keyFileName string) (string, string, error) {
	if !util.EnsureFileExists(certificateFileName) {
		return "", "", fault.MissingParameters
	}
	if !util.EnsureFileExists(keyFileName) {
		return "", "", fault.MissingParameters
	}

	certificate, err := ioutil.ReadFile(certificateFileName)
	if nil != err {
		return "", "", err
	}
	key, err := ioutil.ReadFile(keyFileName)
	if nil != err {
		return "", "", err
	}
	return string(certificate), string(key), nil
}

// MakeSelfSigned - create a self-signed certificate and key file
func MakeSelfSigned(name string, certificateFileName string, keyFileName string, override bool, extraHosts []string) error {

	if util.EnsureFileExists(certificateFileName) {
		return fault.CertificateFileAlreadyExists
	}

	if util.EnsureFileExists(keyFileName) {
		return fault.KeyFileAlreadyExists
	}

	org := "orderd self signed cert for: " + name
	validUntil := time.Now().Add(validity)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
	if nil != err {
		return err
	}

	if err = ioutil.WriteFile(certificateFileName, cert, 0666); nil != err {
		return err
	}

	if err = ioutil.WriteFile(keyFileName, key, 0600); nil != err {
		os.Remove(certificateFileName)
		return err
	}

	return nil
}

// Fingerprint - compute the fingerprint of a certificate
//
// FreeBSD: openssl x509 -outform DER -in orderd-local-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}
