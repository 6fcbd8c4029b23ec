// 指示: miu200521358
// Package scene_host はインメモリシーンに対するホスト能力の実装を提供する。
package scene_host

import (
	"fmt"

	"github.com/miu200521358/mu_outfit_helper/pkg/domain/model"
	"github.com/miu200521358/mu_outfit_helper/pkg/usecase/port/mhost"
	"github.com/tiendc/go-deepcopy"
)

var _ mhost.ISceneHost = (*SceneHost)(nil)

// SceneHost はシーンをホストアプリケーションの代替として操作する。
type SceneHost struct {
	scene *model.Scene
}

// New はシーンを包むホストを生成する。
func New(scene *model.Scene) *SceneHost {
	return &SceneHost{scene: scene}
}

// Scene は操作対象シーンを返す。
func (h *SceneHost) Scene() *model.Scene {
	return h.scene
}

// HasObject は名前のオブジェクトが存在するか判定する。
func (h *SceneHost) HasObject(name string) bool {
	return h.scene.HasObject(name)
}

// IsMesh は名前のオブジェクトがメッシュか判定する。
func (h *SceneHost) IsMesh(name string) bool {
	_, exists := h.scene.MeshByName(name)
	return exists
}

// IsArmature は名前のオブジェクトがアーマチュアか判定する。
func (h *SceneHost) IsArmature(name string) bool {
	_, exists := h.scene.ArmatureByName(name)
	return exists
}

// VertexCount はメッシュの頂点数を返す。
func (h *SceneHost) VertexCount(meshName string) (int, error) {
	mesh, err := h.requireMesh(meshName)
	if err != nil {
		return 0, err
	}
	return mesh.VertexCount(), nil
}

// VertexGroupNames はメッシュの頂点グループ名をシーン順で返す。
func (h *SceneHost) VertexGroupNames(meshName string) ([]string, error) {
	mesh, err := h.requireMesh(meshName)
	if err != nil {
		return nil, err
	}
	return mesh.VertexGroupNames(), nil
}

// VertexGroupWeights は頂点グループのウェイト写像の複製を返す。
func (h *SceneHost) VertexGroupWeights(meshName string, groupName string) (map[int]float64, error) {
	group, err := h.requireVertexGroup(meshName, groupName)
	if err != nil {
		return nil, err
	}
	weights := make(map[int]float64, len(group.Weights))
	for vertexIndex, weight := range group.Weights {
		weights[vertexIndex] = weight
	}
	return weights, nil
}

// ResetVertexGroup は同名グループを空ウェイトで作り直す。無ければ新設する。
func (h *SceneHost) ResetVertexGroup(meshName string, groupName string) error {
	mesh, err := h.requireMesh(meshName)
	if err != nil {
		return err
	}
	mesh.ResetVertexGroup(groupName)
	return nil
}

// SetVertexGroupWeight は頂点グループの1頂点ウェイトを設定する。
func (h *SceneHost) SetVertexGroupWeight(meshName string, groupName string, vertexIndex int, weight float64) error {
	mesh, err := h.requireMesh(meshName)
	if err != nil {
		return err
	}
	if vertexIndex < 0 || vertexIndex >= mesh.VertexCount() {
		return fmt.Errorf("頂点indexが範囲外です: %s index=%d", meshName, vertexIndex)
	}
	group, err := h.requireVertexGroup(meshName, groupName)
	if err != nil {
		return err
	}
	group.Weights[vertexIndex] = weight
	return nil
}

// RemoveVertexGroup は頂点グループを削除する。
func (h *SceneHost) RemoveVertexGroup(meshName string, groupName string) error {
	mesh, err := h.requireMesh(meshName)
	if err != nil {
		return err
	}
	if !mesh.RemoveVertexGroup(groupName) {
		return fmt.Errorf("頂点グループが見つかりません: %s/%s", meshName, groupName)
	}
	return nil
}

// ArmatureReference はメッシュが参照するアーマチュア名を返す。
// モディファイア参照を優先し、無ければアーマチュア親を使う。
func (h *SceneHost) ArmatureReference(meshName string) (string, error) {
	mesh, err := h.requireMesh(meshName)
	if err != nil {
		return "", err
	}
	if mesh.Modifier != nil && mesh.Modifier.ArmatureName != "" {
		return mesh.Modifier.ArmatureName, nil
	}
	if mesh.ParentName != "" {
		if _, exists := h.scene.ArmatureByName(mesh.ParentName); exists {
			return mesh.ParentName, nil
		}
	}
	return "", nil
}

// BindArmature はメッシュのモディファイア参照と親参照をアーマチュアへ向ける。
func (h *SceneHost) BindArmature(meshName string, armatureName string) error {
	mesh, err := h.requireMesh(meshName)
	if err != nil {
		return err
	}
	if _, exists := h.scene.ArmatureByName(armatureName); !exists {
		return fmt.Errorf("アーマチュアが見つかりません: %s", armatureName)
	}
	if mesh.Modifier == nil {
		mesh.Modifier = &model.ArmatureModifier{}
	}
	mesh.Modifier.ArmatureName = armatureName
	mesh.ParentName = armatureName
	return nil
}

// BoneNames はアーマチュアのボーン名をシーン順で返す。
func (h *SceneHost) BoneNames(armatureName string) ([]string, error) {
	armature, err := h.requireArmature(armatureName)
	if err != nil {
		return nil, err
	}
	return armature.BoneNames(), nil
}

// DeleteBone はアーマチュアからボーンを削除する。
func (h *SceneHost) DeleteBone(armatureName string, boneName string) error {
	armature, err := h.requireArmature(armatureName)
	if err != nil {
		return err
	}
	if !armature.RemoveBone(boneName) {
		return fmt.Errorf("ボーンが見つかりません: %s/%s", armatureName, boneName)
	}
	return nil
}

// DuplicateArmature はアーマチュアを複製し、複製の一意な名前を返す。
func (h *SceneHost) DuplicateArmature(armatureName string) (string, error) {
	source, err := h.requireArmature(armatureName)
	if err != nil {
		return "", err
	}

	duplicated := &model.ArmatureObject{}
	if err := deepcopy.Copy(duplicated, source); err != nil {
		return "", fmt.Errorf("アーマチュア複製に失敗しました: %s: %w", armatureName, err)
	}
	duplicated.Name = h.uniqueObjectName(armatureName + "_copy")
	h.scene.AddArmature(duplicated)
	return duplicated.Name, nil
}

// uniqueObjectName は既存オブジェクトと衝突しない名前を返す。
func (h *SceneHost) uniqueObjectName(base string) string {
	if !h.scene.HasObject(base) {
		return base
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s%d", base, i)
		if !h.scene.HasObject(candidate) {
			return candidate
		}
	}
}

// requireMesh は名前一致のメッシュを取得する。
func (h *SceneHost) requireMesh(meshName string) (*model.MeshObject, error) {
	mesh, exists := h.scene.MeshByName(meshName)
	if !exists {
		return nil, fmt.Errorf("メッシュが見つかりません: %s", meshName)
	}
	return mesh, nil
}

// requireArmature は名前一致のアーマチュアを取得する。
func (h *SceneHost) requireArmature(armatureName string) (*model.ArmatureObject, error) {
	armature, exists := h.scene.ArmatureByName(armatureName)
	if !exists {
		return nil, fmt.Errorf("アーマチュアが見つかりません: %s", armatureName)
	}
	return armature, nil
}

// requireVertexGroup は名前一致の頂点グループを取得する。
func (h *SceneHost) requireVertexGroup(meshName string, groupName string) (*model.VertexGroup, error) {
	mesh, err := h.requireMesh(meshName)
	if err != nil {
		return nil, err
	}
	group, exists := mesh.VertexGroupByName(groupName)
	if !exists {
		return nil, fmt.Errorf("頂点グループが見つかりません: %s/%s", meshName, groupName)
	}
	return group, nil
}
