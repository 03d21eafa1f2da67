package storage

// BlobStore persists the serialized application state as a single value under
// one fixed key. Load reports found=false when nothing has been saved yet.
type BlobStore interface {
	Load() (data []byte, found bool, err error)
	Save(data []byte) error
	Close() error
}

// StateKey is the fixed key the state blob lives under, kept identical to the
// historical localStorage key.
const StateKey = "ppl_state"
