// Package mapfile loads the binary tile-map format consumed by the
// pathfinding engine: a flat 1024x1024 grid of packed tile records,
// optionally prefixed with a BMP-style header (see spec §6, grounded
// in Map::Load).
package mapfile

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/voidreach/shipnav/internal/nav"
)

// ErrTruncated is returned when a tile record is cut off mid-stream.
var ErrTruncated = errors.New("mapfile: truncated tile record")

const tileRecordSize = 4

// footprint gives the side length of the square block that a given
// tile id stamps, anchored at (and including) its own cell.
var footprint = map[nav.TileID]int{
	217: 2, // large asteroid
	219: 6, // space station
	220: 5, // wormhole
}

// Load parses raw map-file bytes into a *nav.TileGrid. It never
// touches the filesystem directly; callers read the file themselves
// and hand the bytes here, matching how the rest of this package
// separates parsing from I/O.
func Load(data []byte) (*nav.TileGrid, error) {
	pos := 0
	if len(data) >= 6 && data[0] == 'B' && data[1] == 'M' {
		pos = int(binary.LittleEndian.Uint32(data[2:6]))
	}

	tiles := make([]nav.TileID, nav.GridExtent*nav.GridExtent)

	for pos < len(data) {
		if pos+tileRecordSize > len(data) {
			return nil, fmt.Errorf("mapfile: record at offset %d: %w", pos, ErrTruncated)
		}

		packed := binary.LittleEndian.Uint32(data[pos : pos+tileRecordSize])
		x := int(packed & 0xFFF)
		y := int((packed >> 12) & 0xFFF)
		id := nav.TileID(packed >> 24)

		stampTile(tiles, x, y, id)

		pos += tileRecordSize
	}

	return nav.NewTileGrid(tiles), nil
}

// stampTile writes id at (x, y) and, for footprint tiles, across the
// square block anchored at that corner.
func stampTile(tiles []nav.TileID, x, y int, id nav.TileID) {
	side, ok := footprint[id]
	if !ok {
		side = 1
	}
	for dy := 0; dy < side; dy++ {
		for dx := 0; dx < side; dx++ {
			px, py := x+dx, y+dy
			if px < 0 || py < 0 || px >= nav.GridExtent || py >= nav.GridExtent {
				continue
			}
			tiles[py*nav.GridExtent+px] = id
		}
	}
}
