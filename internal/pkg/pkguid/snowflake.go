package pkguid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// MaxNodeID is the highest node id accepted by NewSnowflake (10 bits).
const MaxNodeID int64 = 1<<10 - 1

//nolint:gochecknoglobals // snowflake.Epoch is package state of the library
var setEpoch sync.Once

// Snowflake generates numeric IDs using the Snowflake algorithm.
type Snowflake struct {
	node *snowflake.Node
}

func generateRandomNodeID() (int64, error) {
	var nodeID int64
	if err := binary.Read(rand.Reader, binary.BigEndian, &nodeID); err != nil {
		return 0, err
	}

	return nodeID & MaxNodeID, nil
}

// NewSnowflake constructs a Snowflake generator for nodeID. A negative nodeID
// picks a random node, which is fine for single-instance deployments.
func NewSnowflake(nodeID int64) (*Snowflake, error) {
	if nodeID < 0 {
		id, err := generateRandomNodeID()
		if err != nil {
			return nil, err
		}
		nodeID = id
	}
	if nodeID > MaxNodeID {
		return nil, fmt.Errorf("snowflake node id %d out of range 0..%d", nodeID, MaxNodeID)
	}

	setEpoch.Do(func() {
		snowflake.Epoch = 1764522000000 // Mon Dec 01 2025 00:00:00.000 WIB
	})

	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns a new unique numeric ID.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}
