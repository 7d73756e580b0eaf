// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entity

// Participant - a party that can be referenced by orders and events
type Participant struct {
	Class         string `json:"$class"`
	ParticipantId string `json:"participantId"`
	Name          string `json:"name,omitempty"`
}

func newParticipant(fullyQualifiedType string, id string) Resource {
	return &Participant{
		Class:         fullyQualifiedType,
		ParticipantId: id,
	}
}

// FullyQualifiedType - for Resource interface
func (p *Participant) FullyQualifiedType() string {
	return p.Class
}

// Identifier - for Resource interface
func (p *Participant) Identifier() string {
	return p.ParticipantId
}
