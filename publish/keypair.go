// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/hex"
	"io/ioutil"
	"os"
	"strings"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/orderd/fault"
	"github.com/bitmark-inc/orderd/util"
)

const (
	taggedPublic  = "PUBLIC:"
	taggedPrivate = "PRIVATE:"
	keyLength     = 32
)

// MakeKeyPair - create a CURVE key pair in two files
func MakeKeyPair(publicKeyFileName string, privateKeyFileName string) error {
	if util.EnsureFileExists(publicKeyFileName) || util.EnsureFileExists(privateKeyFileName) {
		return fault.KeyFileAlreadyExists
	}

	// keys are returned in Z85 encoding
	publicKey, privateKey, err := zmq.NewCurveKeypair()
	if nil != err {
		return err
	}

	publicKey = taggedPublic + hex.EncodeToString([]byte(zmq.Z85decode(publicKey))) + "\n"
	privateKey = taggedPrivate + hex.EncodeToString([]byte(zmq.Z85decode(privateKey))) + "\n"

	if err = ioutil.WriteFile(publicKeyFileName, []byte(publicKey), 0666); nil != err {
		return err
	}

	if err = ioutil.WriteFile(privateKeyFileName, []byte(privateKey), 0600); nil != err {
		os.Remove(publicKeyFileName)
		return err
	}

	return nil
}

// ReadPublicKeyFile - 32 byte public key from a key file
func ReadPublicKeyFile(fileName string) ([]byte, error) {
	data, private, err := readKeyFile(fileName)
	if nil != err {
		return nil, err
	}
	if private {
		return nil, fault.InvalidPublicKeyFile
	}
	return data, nil
}

// ReadPrivateKeyFile - 32 byte private key from a key file
func ReadPrivateKeyFile(fileName string) ([]byte, error) {
	data, private, err := readKeyFile(fileName)
	if nil != err {
		return nil, err
	}
	if !private {
		return nil, fault.InvalidPrivateKeyFile
	}
	return data, nil
}

func readKeyFile(fileName string) ([]byte, bool, error) {
	buffer, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, false, err
	}
	return parseKey(string(buffer))
}

// returns key bytes and true for a private key
func parseKey(data string) ([]byte, bool, error) {
	s := strings.TrimSpace(data)

	private := false
	invalid := fault.InvalidPublicKeyFile
	switch {
	case strings.HasPrefix(s, taggedPrivate):
		s = s[len(taggedPrivate):]
		private = true
		invalid = fault.InvalidPrivateKeyFile
	case strings.HasPrefix(s, taggedPublic):
		s = s[len(taggedPublic):]
	default:
		return nil, false, fault.InvalidPublicKeyFile
	}

	h, err := hex.DecodeString(s)
	if nil != err || keyLength != len(h) {
		return nil, false, invalid
	}
	return h, private, nil
}
