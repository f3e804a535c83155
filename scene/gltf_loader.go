package scene

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"learn-opengl/core"
)

// LoadGLTF opens a .glb or .gltf file and flattens its default scene into
// a Model: every mesh primitive becomes one Mesh with the node transforms
// baked into its vertices. PBR metallic-roughness is approximated to Phong.
func LoadGLTF(path string, log *slog.Logger) (*Model, error) {
	if log == nil {
		log = slog.Default()
	}
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	l := &gltfLoader{doc: doc, dir: filepath.Dir(path), log: log.With("model", path)}
	l.loadTextures()
	l.loadMaterials()

	model := &Model{Path: path}
	for _, root := range l.roots() {
		model.Meshes = l.walk(root, mgl32.Ident4(), model.Meshes)
	}
	if len(model.Meshes) == 0 {
		return nil, fmt.Errorf("no geometry found in %q", path)
	}
	return model, nil
}

type gltfLoader struct {
	doc       *gltf.Document
	dir       string
	log       *slog.Logger
	textures  []*Texture
	materials []*Material
}

func (l *gltfLoader) loadTextures() {
	l.textures = make([]*Texture, len(l.doc.Textures))
	for i, gt := range l.doc.Textures {
		if gt.Source == nil || *gt.Source >= len(l.doc.Images) {
			continue
		}
		img := l.doc.Images[*gt.Source]
		name := img.Name
		if name == "" {
			name = fmt.Sprintf("gltf_img_%d", *gt.Source)
		}

		var tex *Texture
		var err error
		switch {
		case img.BufferView != nil:
			// Binary GLB: image data lives in a buffer view
			var raw []byte
			raw, err = modeler.ReadBufferView(l.doc, l.doc.BufferViews[*img.BufferView])
			if err == nil {
				tex, err = decodeImageBytes(name, raw)
			}
		case img.IsEmbeddedResource():
			var raw []byte
			raw, err = img.MarshalData()
			if err == nil {
				tex, err = decodeImageBytes(name, raw)
			}
		case img.URI != "":
			tex, err = LoadTexture(filepath.Join(l.dir, img.URI), false)
		}
		if err != nil {
			l.log.Warn("gltf texture not loaded, using placeholder", "image", *gt.Source, "err", err)
			tex = MissingTexture(name)
		}
		l.textures[i] = tex
	}
}

func (l *gltfLoader) texture(idx int) *Texture {
	if idx >= 0 && idx < len(l.textures) {
		return l.textures[idx]
	}
	return nil
}

func (l *gltfLoader) loadMaterials() {
	l.materials = make([]*Material, len(l.doc.Materials))
	for i, gm := range l.doc.Materials {
		mat := DefaultMaterial()
		mat.Name = gm.Name

		if pbr := gm.PBRMetallicRoughness; pbr != nil {
			cf := pbr.BaseColorFactorOrDefault()
			mat.Diffuse = core.Color{
				R: float32(cf[0]), G: float32(cf[1]),
				B: float32(cf[2]), A: float32(cf[3]),
			}
			if pbr.BaseColorTexture != nil {
				mat.DiffuseTexture = l.texture(pbr.BaseColorTexture.Index)
			}
			// roughness -> shininess, metallic -> specular intensity
			roughness := float32(pbr.RoughnessFactorOrDefault())
			metallic := float32(pbr.MetallicFactorOrDefault())
			mat.Shininess = (1.0-roughness)*(1.0-roughness)*128.0 + 1.0
			s := metallic * 0.7
			mat.Specular = core.Color{R: s, G: s, B: s, A: 1}
		}
		l.materials[i] = mat
	}
}

// roots returns the node indices of the default scene, or every parentless
// node when the document has none.
func (l *gltfLoader) roots() []int {
	doc := l.doc
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		return doc.Scenes[*doc.Scene].Nodes
	}
	hasParent := make([]bool, len(doc.Nodes))
	for _, gn := range doc.Nodes {
		for _, c := range gn.Children {
			if c < len(hasParent) {
				hasParent[c] = true
			}
		}
	}
	var out []int
	for i := range doc.Nodes {
		if !hasParent[i] {
			out = append(out, i)
		}
	}
	return out
}

func (l *gltfLoader) walk(idx int, parent mgl32.Mat4, meshes []*Mesh) []*Mesh {
	if idx < 0 || idx >= len(l.doc.Nodes) {
		return meshes
	}
	gn := l.doc.Nodes[idx]
	world := parent.Mul4(nodeMatrix(gn))

	if gn.Mesh != nil && *gn.Mesh < len(l.doc.Meshes) {
		gm := l.doc.Meshes[*gn.Mesh]
		for pi, prim := range gm.Primitives {
			m, err := l.primitive(gm.Name, pi, prim, world)
			if err != nil {
				l.log.Warn("gltf primitive skipped", "mesh", *gn.Mesh, "primitive", pi, "err", err)
				continue
			}
			meshes = append(meshes, m)
		}
	}
	for _, c := range gn.Children {
		meshes = l.walk(c, world, meshes)
	}
	return meshes
}

func nodeMatrix(gn *gltf.Node) mgl32.Mat4 {
	if m := gn.MatrixOrDefault(); m != gltf.DefaultMatrix {
		var out mgl32.Mat4
		for i := range m {
			out[i] = float32(m[i])
		}
		return out
	}
	t := gn.TranslationOrDefault()
	r := gn.RotationOrDefault() // [x, y, z, w]
	s := gn.ScaleOrDefault()
	q := mgl32.Quat{W: float32(r[3]), V: mgl32.Vec3{float32(r[0]), float32(r[1]), float32(r[2])}}
	return mgl32.Translate3D(float32(t[0]), float32(t[1]), float32(t[2])).
		Mul4(q.Normalize().Mat4()).
		Mul4(mgl32.Scale3D(float32(s[0]), float32(s[1]), float32(s[2])))
}

// primitive converts one glTF mesh primitive into a Mesh in world space.
func (l *gltfLoader) primitive(meshName string, primIdx int, prim *gltf.Primitive, world mgl32.Mat4) (*Mesh, error) {
	doc := l.doc
	name := fmt.Sprintf("%s_p%d", meshName, primIdx)
	if meshName == "" {
		name = fmt.Sprintf("prim_%d", primIdx)
	}
	if prim.Mode != gltf.PrimitiveTriangles {
		return nil, fmt.Errorf("unsupported primitive mode %v", prim.Mode)
	}

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	var uvs [][2]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	normalMat := world.Mat3().Inv().Transpose()
	verts := make([]core.Vertex, len(positions))
	for i, p := range positions {
		v := core.Vertex{
			Position: mgl32.TransformCoordinate(mgl32.Vec3{p[0], p[1], p[2]}, world),
			Normal:   mgl32.Vec3{0, 1, 0},
		}
		if i < len(normals) {
			n := normalMat.Mul3x1(mgl32.Vec3{normals[i][0], normals[i][1], normals[i][2]})
			if n.Len() > 0 {
				v.Normal = n.Normalize()
			}
		}
		if i < len(uvs) {
			v.UV = mgl32.Vec2{uvs[i][0], uvs[i][1]}
		}
		verts[i] = v
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	}

	m := NewMesh(name, verts, indices)
	if prim.Material != nil && *prim.Material < len(l.materials) {
		m.Material = l.materials[*prim.Material]
	}
	return m, nil
}
