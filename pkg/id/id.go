package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu   sync.Mutex
	mono io.Reader

	lastAccountID int64
)

func init() {
	// Seed a PRNG from crypto/rand so ULID entropy is unpredictable.
	// ulid.Monotonic keeps IDs generated within the same millisecond
	// lexicographically increasing.
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	mono = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// NewBatchID returns a ULID string (time-sortable identifier) used to tag
// statement import batches in logs.
func NewBatchID() string {
	mu.Lock()
	defer mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(time.Now().UTC()), mono)
	if err != nil {
		// Errors are extremely unlikely unless time goes backwards or entropy fails.
		panic(err)
	}
	return id.String()
}

// NewAccountID returns a millisecond-timestamp-derived numeric identifier.
// IDs remain strictly increasing even when two accounts are created within
// the same millisecond.
func NewAccountID() int64 {
	mu.Lock()
	defer mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= lastAccountID {
		id = lastAccountID + 1
	}
	lastAccountID = id
	return id
}
