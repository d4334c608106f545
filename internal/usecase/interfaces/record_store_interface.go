package interfaces

//go:generate mockgen -source=record_store_interface.go -destination=mocks/record_store_interface_mock.go

import "context"

// IRecordStore is the key-value namespace the repositories persist to.
//
// Each key holds one serialized document (a JSON array for collections, an
// object for settings). Get reports found=false for an absent key; callers
// treat that as the default value, never as an error.
type IRecordStore interface {
	Get(ctx context.Context, key string) (payload []byte, found bool, err error)
	Set(ctx context.Context, key string, payload []byte) error
}
