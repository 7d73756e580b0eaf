// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entity

import (
	"strings"
)

// DefaultNamespace - namespace used when none is configured
const DefaultNamespace = Namespace("org.privatedata")

// Namespace - prefix of all fully qualified type names
type Namespace string

// Qualify - fully qualified name of a short type name
func (ns Namespace) Qualify(name string) string {
	return string(ns) + "." + name
}

// ShortName - strip the namespace, false if the type is outside it
func (ns Namespace) ShortName(fullyQualifiedType string) (string, bool) {
	prefix := string(ns) + "."
	if !strings.HasPrefix(fullyQualifiedType, prefix) {
		return "", false
	}
	name := fullyQualifiedType[len(prefix):]
	if "" == name || strings.Contains(name, ".") {
		return "", false
	}
	return name, true
}

// Resource - a record that can be stored in a registry
type Resource interface {
	FullyQualifiedType() string
	Identifier() string
}

// Getter - anything that can fetch a resource by type and identifier
type Getter interface {
	Get(fullyQualifiedType string, id string) (Resource, error)
}
