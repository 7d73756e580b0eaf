// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"
	"encoding/json"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderd/entity"
	"github.com/bitmark-inc/orderd/event"
	"github.com/bitmark-inc/orderd/fault"
	"github.com/bitmark-inc/orderd/messagebus"
	"github.com/bitmark-inc/orderd/registry"
	"github.com/bitmark-inc/orderd/storage"
	"github.com/bitmark-inc/orderd/txid"
)

// key of the sequence number in the Sequence pool
var sequenceKey = []byte("sequence")

// Record - a committed transaction
type Record struct {
	TxId      txid.Id             `json:"txId"`
	Type      string              `json:"type"`
	Invoker   entity.Relationship `json:"invoker"`
	Sequence  uint64              `json:"sequence"`
	Timestamp time.Time           `json:"timestamp"`
	Request   json.RawMessage     `json:"request"`
}

// Func - the body of a transaction
type Func func(Context) error

// Ledger - executes transactions against one database
type Ledger struct {
	sync.Mutex

	log     *logger.L
	db      *storage.Database
	factory *entity.Factory
	bus     *messagebus.BroadcastQueue
}

// New - create a ledger, bus may be nil if nothing observes events
func New(log *logger.L, db *storage.Database, factory *entity.Factory, bus *messagebus.BroadcastQueue) *Ledger {
	return &Ledger{
		log:     log,
		db:      db,
		factory: factory,
		bus:     bus,
	}
}

// Factory - the factory of all ledger types
func (l *Ledger) Factory() *entity.Factory {
	return l.factory
}

// Submit - run a transaction function atomically
//
// the request is stored with the transaction record and is part of
// the transaction id
func (l *Ledger) Submit(kind string, invoker entity.Relationship, request interface{}, fn Func) (txid.Id, error) {
	l.Lock()
	defer l.Unlock()

	req, err := json.Marshal(request)
	if nil != err {
		return txid.Id{}, err
	}

	trx, err := l.db.Begin()
	if nil != err {
		return txid.Id{}, err
	}

	// Commit always ends the transaction so a late Abort is harmless
	committed := false
	defer func() {
		if !committed {
			trx.Abort()
		}
	}()

	seq, _, err := trx.GetN(l.db.Pool.Sequence, sequenceKey)
	if nil != err {
		return txid.Id{}, err
	}
	seq += 1

	id := txid.New(kind, req, seq)
	ctx := &transactionContext{
		store:   registry.NewStore(l.db, l.factory, trx),
		invoker: invoker,
	}

	err = fn(ctx)
	if nil != err {
		l.log.Debugf("%s: %s aborted: %s", kind, id, err)
		return txid.Id{}, err
	}

	timestamp := time.Now().UTC()
	record := Record{
		TxId:      id,
		Type:      kind,
		Invoker:   invoker,
		Sequence:  seq,
		Timestamp: timestamp,
		Request:   req,
	}
	buffer, err := json.Marshal(record)
	if nil != err {
		return txid.Id{}, err
	}
	trx.Put(l.db.Pool.Transactions, id[:], buffer)
	trx.PutN(l.db.Pool.Sequence, sequenceKey, seq)

	packed := make([][]byte, len(ctx.events))
	for i, e := range ctx.events {
		if !e.Kind.Valid() {
			l.log.Errorf("%s: %s emitted unknown event: %q", kind, id, e.Kind)
			return txid.Id{}, fault.UnknownEventKind
		}
		e.TxId = id
		e.Index = uint32(i)
		e.Timestamp = timestamp
		packed[i], err = json.Marshal(e)
		if nil != err {
			return txid.Id{}, err
		}
		trx.Put(l.db.Pool.Events, eventKey(id, uint32(i)), packed[i])
	}

	committed = true
	err = trx.Commit()
	if nil != err {
		l.log.Errorf("%s: %s commit error: %s", kind, id, err)
		return txid.Id{}, err
	}

	l.log.Infof("%s: %s committed  sequence: %d  events: %d", kind, id, seq, len(ctx.events))

	if nil != l.bus {
		for i, e := range ctx.events {
			l.bus.Send(string(e.Kind), id[:], packed[i])
		}
	}

	return id, nil
}

// Transaction - a committed transaction record and its events
func (l *Ledger) Transaction(id txid.Id) (*Record, []*event.Event, error) {
	buffer, err := l.db.Get(l.db.Pool.Transactions, id[:])
	if nil != err {
		return nil, nil, err
	}
	if nil == buffer {
		return nil, nil, fault.TransactionNotFound
	}

	var record Record
	err = json.Unmarshal(buffer, &record)
	if nil != err {
		return nil, nil, err
	}

	events := make([]*event.Event, 0, 3)
	cursor := l.db.NewFetchCursor(l.db.Pool.Events).Prefix(id[:])
	err = cursor.Map(func(key []byte, value []byte) error {
		var e event.Event
		if err := json.Unmarshal(value, &e); nil != err {
			return err
		}
		if !e.Kind.Valid() {
			return fault.UnknownEventKind
		}
		events = append(events, &e)
		return nil
	})
	if nil != err {
		return nil, nil, err
	}

	return &record, events, nil
}

// Count - number of committed transactions
func (l *Ledger) Count() (uint64, error) {
	buffer, err := l.db.Get(l.db.Pool.Sequence, sequenceKey)
	if nil != err || nil == buffer {
		return 0, err
	}
	if len(buffer) < 8 {
		return 0, fault.IncompatibleDatabase
	}
	return binary.BigEndian.Uint64(buffer[:8]), nil
}

// V ++ txId ++ index
func eventKey(id txid.Id, index uint32) []byte {
	key := make([]byte, txid.Length+4)
	copy(key, id[:])
	binary.BigEndian.PutUint32(key[txid.Length:], index)
	return key
}
