package scene

// Attrib describes one float vertex attribute inside an interleaved buffer.
// Size and Offset are counted in floats.
type Attrib struct {
	Location uint32
	Size     int32
	Offset   int
}

// VertexLayout is the attribute layout of an interleaved float32 vertex
// buffer. Stride is in floats.
type VertexLayout struct {
	Stride  int
	Attribs []Attrib
}

// Interleaved builds a layout with one attribute per size, assigned to
// locations 0, 1, 2, ... in order.
func Interleaved(sizes ...int32) VertexLayout {
	layout := VertexLayout{Attribs: make([]Attrib, 0, len(sizes))}
	for i, size := range sizes {
		layout.Attribs = append(layout.Attribs, Attrib{
			Location: uint32(i),
			Size:     size,
			Offset:   layout.Stride,
		})
		layout.Stride += int(size)
	}
	return layout
}

// Select keeps only the attributes at the given locations. Stride and
// offsets are unchanged, so the result still reads the original buffer.
// Unknown locations are ignored.
func (l VertexLayout) Select(locations ...uint32) VertexLayout {
	out := VertexLayout{Stride: l.Stride}
	for _, loc := range locations {
		for _, a := range l.Attribs {
			if a.Location == loc {
				out.Attribs = append(out.Attribs, a)
				break
			}
		}
	}
	return out
}

// VertexCount is the number of whole vertices in data.
func (l VertexLayout) VertexCount(data []float32) int {
	if l.Stride == 0 {
		return 0
	}
	return len(data) / l.Stride
}

// StrideBytes is the stride in bytes, as glVertexAttribPointer wants it.
func (l VertexLayout) StrideBytes() int32 {
	return int32(l.Stride * 4)
}
