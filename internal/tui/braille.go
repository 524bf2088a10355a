package tui

// brailleBuf is a 2x4 micro-pixel canvas per terminal cell. Each cell also
// remembers which layer drew into it last, so cells can be colored per layer.
type brailleBuf struct {
	w, h  int       // in cells
	m     [][]uint8 // per-cell 8-bit mask
	owner [][]int8  // layer kind + 1 of the last writer, 0 when blank
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	owner := make([][]int8, h)
	for i := range m {
		m[i] = make([]uint8, w)
		owner[i] = make([]int8, w)
	}
	return &brailleBuf{w: w, h: h, m: m, owner: owner}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, layer int8) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	b.owner[cy][cx] = layer + 1
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, layer int8) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, layer)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// cell is one rendered terminal cell.
type cell struct {
	r     rune
	owner int8
}

func (b *brailleBuf) cells() [][]cell {
	out := make([][]cell, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]cell, b.w)
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				row[x] = cell{r: ' '}
			} else {
				row[x] = cell{r: rune(0x2800 + int(mask)), owner: b.owner[y][x]}
			}
		}
		out[y] = row
	}
	return out
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y, row := range b.cells() {
		rs := make([]rune, len(row))
		for x, c := range row {
			rs[x] = c.r
		}
		out[y] = string(rs)
	}
	return out
}
