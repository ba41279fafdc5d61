package printer

import (
	"encoding/json"
	"io"

	"github.com/joshuapare/arenakit/arena"
	"github.com/joshuapare/arenakit/arena/blocklist"
	"github.com/joshuapare/arenakit/internal/slotpool"
)

// jsonBlock is one block record in JSON output.
type jsonBlock struct {
	Kind    string `json:"kind"`
	Address uint32 `json:"address"`
	Length  uint32 `json:"length"`
}

// jsonDump is the top-level JSON document.
type jsonDump struct {
	Capacity uint32      `json:"capacity"`
	Policy   string      `json:"policy"`
	Records  int         `json:"records"`
	Blocks   []jsonBlock `json:"blocks"`
}

// printJSON writes the block list as a single JSON document.
func printJSON(w io.Writer, a *arena.Arena, blocks []blocklist.BlockInfo) error {
	dump := jsonDump{
		Capacity: a.Capacity(),
		Policy:   a.Policy().String(),
		Records:  len(blocks),
		Blocks:   make([]jsonBlock, 0, len(blocks)),
	}
	for _, b := range blocks {
		kind := "hole"
		if b.Kind == slotpool.Occupied {
			kind = "occupied"
		}
		dump.Blocks = append(dump.Blocks, jsonBlock{
			Kind:    kind,
			Address: b.Addr,
			Length:  b.Length,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dump)
}
