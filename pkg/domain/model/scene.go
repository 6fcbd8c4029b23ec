// 指示: miu200521358
package model

// SceneSelection はホスト側の選択状態を表す。
type SceneSelection struct {
	ActiveName    string
	SelectedNames []string
}

// Scene は編集対象オブジェクト一式と選択状態を表す。
type Scene struct {
	Meshes    []*MeshObject
	Armatures []*ArmatureObject
	Selection SceneSelection
}

// NewScene は空のシーンを生成する。
func NewScene() *Scene {
	return &Scene{}
}

// MeshByName は名前一致のメッシュを返す。
func (s *Scene) MeshByName(name string) (*MeshObject, bool) {
	if s == nil {
		return nil, false
	}
	for _, mesh := range s.Meshes {
		if mesh.Name == name {
			return mesh, true
		}
	}
	return nil, false
}

// ArmatureByName は名前一致のアーマチュアを返す。
func (s *Scene) ArmatureByName(name string) (*ArmatureObject, bool) {
	if s == nil {
		return nil, false
	}
	for _, armature := range s.Armatures {
		if armature.Name == name {
			return armature, true
		}
	}
	return nil, false
}

// HasObject は名前のオブジェクトがシーンに存在するか判定する。
func (s *Scene) HasObject(name string) bool {
	if _, exists := s.MeshByName(name); exists {
		return true
	}
	_, exists := s.ArmatureByName(name)
	return exists
}

// AddMesh はメッシュをシーンへ追加する。
func (s *Scene) AddMesh(mesh *MeshObject) {
	if s == nil || mesh == nil {
		return
	}
	s.Meshes = append(s.Meshes, mesh)
}

// AddArmature はアーマチュアをシーンへ追加する。
func (s *Scene) AddArmature(armature *ArmatureObject) {
	if s == nil || armature == nil {
		return
	}
	s.Armatures = append(s.Armatures, armature)
}
