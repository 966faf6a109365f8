package mapfile

import (
	"encoding/binary"
	"testing"

	"github.com/voidreach/shipnav/internal/nav"
)

func packTile(x, y int, tile nav.TileID) []byte {
	packed := uint32(x&0xFFF) | uint32(y&0xFFF)<<12 | uint32(tile)<<24
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, packed)
	return buf
}

func TestLoadNoPrefix(t *testing.T) {
	data := append(packTile(5, 9, 3), packTile(10, 10, 0)...)

	grid, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if grid.TileAt(5, 9) != 3 {
		t.Fatalf("TileAt(5,9) = %d, want 3", grid.TileAt(5, 9))
	}
}

func TestLoadBMPrefix(t *testing.T) {
	header := []byte{'B', 'M', 0, 0, 0, 0}
	binary.LittleEndian.PutUint32(header[2:], 6)
	data := append(header, packTile(2, 2, 7)...)

	grid, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if grid.TileAt(2, 2) != 7 {
		t.Fatalf("TileAt(2,2) = %d, want 7", grid.TileAt(2, 2))
	}
}

func TestLoadFootprintStamping(t *testing.T) {
	data := packTile(100, 100, 219) // 6x6 space station footprint

	grid, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for dy := 0; dy < 6; dy++ {
		for dx := 0; dx < 6; dx++ {
			if grid.TileAt(100+dx, 100+dy) != 219 {
				t.Fatalf("TileAt(%d,%d) not stamped", 100+dx, 100+dy)
			}
		}
	}
	if grid.TileAt(106, 100) == 219 {
		t.Fatalf("stamping overran the footprint")
	}
}

func TestLoadTruncatedRecord(t *testing.T) {
	_, err := Load([]byte{1, 2, 3})
	if err == nil {
		t.Fatal("expected an error for a truncated record")
	}
}
