package scene

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"learn-opengl/core"
)

// objFace is an already-triangulated face (three vertex references).
type objFace struct {
	vIdx, vtIdx, vnIdx [3]int // 0-based position / UV / normal indices (-1 = absent)
}

type objObject struct {
	name    string
	matName string
	faces   []objFace
}

// objParser accumulates the indexed data pools of one OBJ file.
type objParser struct {
	dir       string
	log       *slog.Logger
	positions []mgl32.Vec3
	normals   []mgl32.Vec3
	uvs       []mgl32.Vec2
	materials map[string]*Material
	objects   []objObject
	cur       *objObject
}

// LoadOBJ parses a Wavefront .obj file into a Model with one Mesh per
// object/group. Material libraries referenced via "mtllib" are loaded from
// the same directory. Textures that fail to load are logged and replaced
// by MissingTexture.
func LoadOBJ(path string, log *slog.Logger) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj %q: %w", path, err)
	}
	defer f.Close()

	meshes, err := ParseOBJ(f, filepath.Dir(path), log)
	if err != nil {
		return nil, fmt.Errorf("obj %q: %w", path, err)
	}
	return &Model{Path: path, Meshes: meshes}, nil
}

// ParseOBJ reads OBJ data from r. dir resolves mtllib and texture paths.
func ParseOBJ(r io.Reader, dir string, log *slog.Logger) ([]*Mesh, error) {
	if log == nil {
		log = slog.Default()
	}
	p := &objParser{
		dir:       dir,
		log:       log,
		materials: map[string]*Material{},
		cur:       &objObject{name: "default"},
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p.line(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan obj: %w", err)
	}

	if len(p.cur.faces) > 0 {
		p.objects = append(p.objects, *p.cur)
	}
	if len(p.objects) == 0 {
		return nil, fmt.Errorf("no geometry found")
	}

	meshes := make([]*Mesh, 0, len(p.objects))
	for _, obj := range p.objects {
		mesh := buildMeshFromOBJ(obj.name, obj.faces, p.positions, p.normals, p.uvs)
		if mat, ok := p.materials[obj.matName]; ok {
			mesh.Material = mat
		} else {
			mesh.Material = DefaultMaterial()
		}
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

func (p *objParser) line(raw string) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}
	fields := strings.Fields(line)

	switch fields[0] {
	case "v":
		if v, ok := parseVec3(fields); ok {
			p.positions = append(p.positions, v)
		}

	case "vn":
		if v, ok := parseVec3(fields); ok {
			p.normals = append(p.normals, v)
		}

	case "vt":
		if len(fields) < 3 {
			return
		}
		u, _ := strconv.ParseFloat(fields[1], 32)
		v, _ := strconv.ParseFloat(fields[2], 32)
		p.uvs = append(p.uvs, mgl32.Vec2{float32(u), float32(v)})

	case "o", "g":
		if len(p.cur.faces) > 0 {
			p.objects = append(p.objects, *p.cur)
		}
		name := "default"
		if len(fields) > 1 {
			name = fields[1]
		}
		p.cur = &objObject{name: name, matName: p.cur.matName}

	case "usemtl":
		if len(fields) > 1 {
			// A material switch inside a group starts a new mesh so each
			// mesh draws with a single material.
			if len(p.cur.faces) > 0 && p.cur.matName != fields[1] {
				p.objects = append(p.objects, *p.cur)
				p.cur = &objObject{name: p.cur.name}
			}
			p.cur.matName = fields[1]
		}

	case "mtllib":
		if len(fields) > 1 {
			mtlPath := filepath.Join(p.dir, fields[1])
			loaded, err := loadMTL(mtlPath, p.dir, p.log)
			if err != nil {
				p.log.Warn("material library not loaded", "path", mtlPath, "err", err)
				return
			}
			for k, v := range loaded {
				p.materials[k] = v
			}
		}

	case "f":
		if len(fields) < 4 {
			return
		}
		fverts := make([]faceVertex, 0, len(fields)-1)
		for _, tok := range fields[1:] {
			fverts = append(fverts, p.resolve(parseFaceVertex(tok)))
		}
		// Fan triangulation: 0-1-2, 0-2-3, 0-3-4, ...
		for i := 1; i+1 < len(fverts); i++ {
			f0, f1, f2 := fverts[0], fverts[i], fverts[i+1]
			p.cur.faces = append(p.cur.faces, objFace{
				vIdx:  [3]int{f0.v, f1.v, f2.v},
				vtIdx: [3]int{f0.vt, f1.vt, f2.vt},
				vnIdx: [3]int{f0.vn, f1.vn, f2.vn},
			})
		}
	}
}

type faceVertex struct{ v, vt, vn int }

// resolve turns negative (relative) indices into absolute 0-based ones.
func (p *objParser) resolve(f faceVertex) faceVertex {
	rel := func(i, n int) int {
		if i < -1 {
			return n + i + 1
		}
		return i
	}
	return faceVertex{
		v:  rel(f.v, len(p.positions)),
		vt: rel(f.vt, len(p.uvs)),
		vn: rel(f.vn, len(p.normals)),
	}
}

// parseFaceVertex parses one face vertex token: "v", "v/vt", "v//vn", "v/vt/vn".
// Positive indices become 0-based; absent ones are -1. Negative indices are
// kept shifted by one (-1 becomes -2) so resolve can tell them from absent.
func parseFaceVertex(tok string) faceVertex {
	parseIdx := func(s string) int {
		if s == "" {
			return -1
		}
		n, err := strconv.Atoi(s)
		if err != nil || n == 0 {
			return -1
		}
		return n - 1
	}
	parts := strings.Split(tok, "/")
	res := faceVertex{v: -1, vt: -1, vn: -1}
	if len(parts) > 0 {
		res.v = parseIdx(parts[0])
	}
	if len(parts) > 1 {
		res.vt = parseIdx(parts[1])
	}
	if len(parts) > 2 {
		res.vn = parseIdx(parts[2])
	}
	return res
}

func parseVec3(fields []string) (mgl32.Vec3, bool) {
	if len(fields) < 4 {
		return mgl32.Vec3{}, false
	}
	x, _ := strconv.ParseFloat(fields[1], 32)
	y, _ := strconv.ParseFloat(fields[2], 32)
	z, _ := strconv.ParseFloat(fields[3], 32)
	return mgl32.Vec3{float32(x), float32(y), float32(z)}, true
}

// buildMeshFromOBJ converts parsed face data into a deduplicated Mesh.
func buildMeshFromOBJ(name string, faces []objFace, positions, normals []mgl32.Vec3, uvs []mgl32.Vec2) *Mesh {
	vertMap := map[faceVertex]uint32{}
	var vertices []core.Vertex
	var indices []uint32

	safePos := func(i int) mgl32.Vec3 {
		if i >= 0 && i < len(positions) {
			return positions[i]
		}
		return mgl32.Vec3{}
	}
	safeNorm := func(i int) mgl32.Vec3 {
		if i >= 0 && i < len(normals) {
			return normals[i]
		}
		return mgl32.Vec3{0, 1, 0}
	}
	safeUV := func(i int) mgl32.Vec2 {
		if i >= 0 && i < len(uvs) {
			return uvs[i]
		}
		return mgl32.Vec2{}
	}

	for _, face := range faces {
		for c := 0; c < 3; c++ {
			k := faceVertex{face.vIdx[c], face.vtIdx[c], face.vnIdx[c]}
			idx, ok := vertMap[k]
			if !ok {
				idx = uint32(len(vertices))
				vertices = append(vertices, core.Vertex{
					Position: safePos(k.v),
					Normal:   safeNorm(k.vn),
					UV:       safeUV(k.vt),
				})
				vertMap[k] = idx
			}
			indices = append(indices, idx)
		}
	}

	if len(normals) == 0 {
		generateNormals(vertices, indices)
	}
	return NewMesh(name, vertices, indices)
}

// generateNormals computes area-weighted vertex normals.
func generateNormals(vertices []core.Vertex, indices []uint32) {
	accum := make([]mgl32.Vec3, len(vertices))
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		v0 := vertices[i0].Position
		v1 := vertices[i1].Position
		v2 := vertices[i2].Position
		n := v1.Sub(v0).Cross(v2.Sub(v0))
		accum[i0] = accum[i0].Add(n)
		accum[i1] = accum[i1].Add(n)
		accum[i2] = accum[i2].Add(n)
	}
	for i := range vertices {
		if accum[i].Len() > 0 {
			vertices[i].Normal = accum[i].Normalize()
		}
	}
}

// ── MTL loader ───────────────────────────────────────────────────────────────

func loadMTL(path, dir string, log *slog.Logger) (map[string]*Material, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mats := map[string]*Material{}
	var cur *Material

	// Materials often share texture files.
	textures := map[string]*Texture{}
	texture := func(name string) *Texture {
		texPath := filepath.Join(dir, filepath.FromSlash(strings.ReplaceAll(name, `\`, "/")))
		if t, ok := textures[texPath]; ok {
			return t
		}
		t, err := LoadTexture(texPath, true)
		if err != nil {
			log.Warn("texture not loaded, using placeholder", "path", texPath, "err", err)
			t = MissingTexture(texPath)
		}
		textures[texPath] = t
		return t
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "newmtl":
			if len(fields) > 1 {
				m := DefaultMaterial()
				m.Name = fields[1]
				mats[fields[1]] = m
				cur = m
			}
		case "Kd":
			if v, ok := parseVec3(fields); ok && cur != nil {
				cur.Diffuse = core.Color{R: v[0], G: v[1], B: v[2], A: 1}
			}
		case "Ks":
			if v, ok := parseVec3(fields); ok && cur != nil {
				cur.Specular = core.Color{R: v[0], G: v[1], B: v[2], A: 1}
			}
		case "Ns":
			if cur != nil && len(fields) >= 2 {
				ns, _ := strconv.ParseFloat(fields[1], 32)
				cur.Shininess = math32.Max(1, float32(ns))
			}
		case "map_Kd":
			if cur != nil && len(fields) >= 2 {
				cur.DiffuseTexture = texture(fields[len(fields)-1])
			}
		case "map_Ks":
			if cur != nil && len(fields) >= 2 {
				cur.SpecularTexture = texture(fields[len(fields)-1])
			}
		}
	}

	return mats, scanner.Err()
}
