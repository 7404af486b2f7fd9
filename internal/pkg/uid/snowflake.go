package uid

import "github.com/bwmarrin/snowflake"

// Snowflake implements NumberID with Twitter snowflake IDs. Account primary
// keys come from here so inserts stay roughly time ordered.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake returns a snowflake generator for the given node number.
func NewSnowflake(node int64) (*Snowflake, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, err
	}
	return &Snowflake{node: n}, nil
}

// Generate returns a new snowflake ID.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}
