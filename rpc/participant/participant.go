// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package participant - RPC registration of sellers, buyers and accounts
package participant

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderd/entity"
	"github.com/bitmark-inc/orderd/fault"
	"github.com/bitmark-inc/orderd/handler"
	"github.com/bitmark-inc/orderd/rpc/ratelimit"
	"github.com/bitmark-inc/orderd/txid"
)

const (
	rateLimitParticipant = 100
	rateBurstParticipant = 50
)

// Handler - the participant transaction
type Handler interface {
	AddParticipant(entity.Relationship, *handler.AddParticipant) (txid.Id, error)
}

// Participant - type for RPC calls
type Participant struct {
	Log     *logger.L
	Limiter *rate.Limiter
	handler Handler
}

// New - create the participant service
func New(log *logger.L, h Handler) *Participant {
	return &Participant{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitParticipant, rateBurstParticipant),
		handler: h,
	}
}

// AddArguments - a participant to register
type AddArguments struct {
	Invoker       entity.Relationship `json:"invoker"`
	Type          string              `json:"type"`
	ParticipantId string              `json:"participantId"`
	Name          string              `json:"name"`
}

// AddReply - the id of the committed transaction
type AddReply struct {
	TxId txid.Id `json:"txId"`
}

// Add - register a participant
func (participant *Participant) Add(arguments *AddArguments, reply *AddReply) error {
	if err := ratelimit.Limit(participant.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	participant.Log.Infof("Participant.Add: %s  id: %q", arguments.Type, arguments.ParticipantId)

	id, err := participant.handler.AddParticipant(arguments.Invoker, &handler.AddParticipant{
		Type:          arguments.Type,
		ParticipantId: arguments.ParticipantId,
		Name:          arguments.Name,
	})
	if nil != err {
		return err
	}
	reply.TxId = id
	return nil
}
