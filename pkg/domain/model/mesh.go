// 指示: miu200521358
// Package model はメッシュ/アーマチュア編集対象のシーンオブジェクトを提供する。
package model

import "gonum.org/v1/gonum/spatial/r3"

// Vertex はメッシュの1頂点を表す。
type Vertex struct {
	Position r3.Vec
}

// VertexGroup は頂点indexからウェイトへの部分写像を表す。
type VertexGroup struct {
	Name    string
	Weights map[int]float64
}

// NewVertexGroup は空のウェイトを持つ頂点グループを生成する。
func NewVertexGroup(name string) *VertexGroup {
	return &VertexGroup{
		Name:    name,
		Weights: map[int]float64{},
	}
}

// HasWeightedVertex は正のウェイトを持つ頂点が1つでも存在するか判定する。
func (g *VertexGroup) HasWeightedVertex() bool {
	if g == nil {
		return false
	}
	for _, weight := range g.Weights {
		if weight > 0 {
			return true
		}
	}
	return false
}

// ArmatureModifier はメッシュが変形に参照するアーマチュアを表す。
type ArmatureModifier struct {
	ArmatureName string
}

// MeshObject は頂点グループ付きメッシュオブジェクトを表す。
type MeshObject struct {
	Name         string
	Vertices     []Vertex
	VertexGroups []*VertexGroup
	Modifier     *ArmatureModifier
	ParentName   string
}

// NewMeshObject はメッシュオブジェクトを生成する。
func NewMeshObject(name string) *MeshObject {
	return &MeshObject{Name: name}
}

// VertexCount は頂点数を返す。
func (m *MeshObject) VertexCount() int {
	if m == nil {
		return 0
	}
	return len(m.Vertices)
}

// VertexGroupNames は頂点グループ名をシーン順で返す。
func (m *MeshObject) VertexGroupNames() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.VertexGroups))
	for _, group := range m.VertexGroups {
		names = append(names, group.Name)
	}
	return names
}

// VertexGroupByName は名前一致の頂点グループを返す。
func (m *MeshObject) VertexGroupByName(name string) (*VertexGroup, bool) {
	if m == nil {
		return nil, false
	}
	for _, group := range m.VertexGroups {
		if group.Name == name {
			return group, true
		}
	}
	return nil, false
}

// ResetVertexGroup は同名グループを空ウェイトで作り直し、無ければ末尾へ追加する。
func (m *MeshObject) ResetVertexGroup(name string) *VertexGroup {
	if group, exists := m.VertexGroupByName(name); exists {
		group.Weights = map[int]float64{}
		return group
	}
	group := NewVertexGroup(name)
	m.VertexGroups = append(m.VertexGroups, group)
	return group
}

// RemoveVertexGroup は名前一致の頂点グループを削除する。
func (m *MeshObject) RemoveVertexGroup(name string) bool {
	if m == nil {
		return false
	}
	for i, group := range m.VertexGroups {
		if group.Name == name {
			m.VertexGroups = append(m.VertexGroups[:i], m.VertexGroups[i+1:]...)
			return true
		}
	}
	return false
}
