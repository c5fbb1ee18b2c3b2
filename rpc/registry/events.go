package registry

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// IdentityRegisteredEvent represents "IdentityRegistered" event emitted by the contract.
type IdentityRegisteredEvent struct {
	Owner    util.Uint160
	Platform string
}

// ContentAddedEvent represents "ContentAdded" event emitted by the contract.
type ContentAddedEvent struct {
	ID    []byte
	Title string
	Owner util.Uint160
}

// FileSharedEvent represents "FileShared" event emitted by the contract.
type FileSharedEvent struct {
	ID        []byte
	Owner     util.Uint160
	Recipient util.Uint160
}

// ContentRemovedEvent represents "ContentRemoved" event emitted by the contract.
type ContentRemovedEvent struct {
	ID    []byte
	Owner util.Uint160
}

// IdentityRegisteredEventsFromApplicationLog retrieves a set of all emitted events
// with "IdentityRegistered" name from the provided [result.ApplicationLog].
func IdentityRegisteredEventsFromApplicationLog(log *result.ApplicationLog) ([]*IdentityRegisteredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*IdentityRegisteredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "IdentityRegistered" {
				continue
			}
			event := new(IdentityRegisteredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize IdentityRegisteredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to IdentityRegisteredEvent or
// returns an error if it's not possible to do to so.
func (e *IdentityRegisteredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var err error
	e.Owner, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	e.Platform, err = itemToString(arr[1])
	if err != nil {
		return fmt.Errorf("field Platform: %w", err)
	}

	return nil
}

// ContentAddedEventsFromApplicationLog retrieves a set of all emitted events
// with "ContentAdded" name from the provided [result.ApplicationLog].
func ContentAddedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ContentAddedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ContentAddedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ContentAdded" {
				continue
			}
			event := new(ContentAddedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ContentAddedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ContentAddedEvent or
// returns an error if it's not possible to do to so.
func (e *ContentAddedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var err error
	e.ID, err = arr[0].TryBytes()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	e.Title, err = itemToString(arr[1])
	if err != nil {
		return fmt.Errorf("field Title: %w", err)
	}

	e.Owner, err = itemToUint160(arr[2])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	return nil
}

// FileSharedEventsFromApplicationLog retrieves a set of all emitted events
// with "FileShared" name from the provided [result.ApplicationLog].
func FileSharedEventsFromApplicationLog(log *result.ApplicationLog) ([]*FileSharedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*FileSharedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "FileShared" {
				continue
			}
			event := new(FileSharedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize FileSharedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to FileSharedEvent or
// returns an error if it's not possible to do to so.
func (e *FileSharedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var err error
	e.ID, err = arr[0].TryBytes()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	e.Owner, err = itemToUint160(arr[1])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	e.Recipient, err = itemToUint160(arr[2])
	if err != nil {
		return fmt.Errorf("field Recipient: %w", err)
	}

	return nil
}

// ContentRemovedEventsFromApplicationLog retrieves a set of all emitted events
// with "ContentRemoved" name from the provided [result.ApplicationLog].
func ContentRemovedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ContentRemovedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ContentRemovedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ContentRemoved" {
				continue
			}
			event := new(ContentRemovedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ContentRemovedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ContentRemovedEvent or
// returns an error if it's not possible to do to so.
func (e *ContentRemovedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var err error
	e.ID, err = arr[0].TryBytes()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	e.Owner, err = itemToUint160(arr[1])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	return nil
}
