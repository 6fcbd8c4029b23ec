// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_outfit_helper/pkg/domain/model"
	"github.com/miu200521358/mu_outfit_helper/pkg/usecase/port/mhost"
)

// Selection はコマンド入力となる選択状態を表す。
// ホストのアクティブ/選択オブジェクトは暗黙参照せず、必ずこの形で受け取る。
type Selection struct {
	ActiveName    string
	SelectedNames []string
}

// SelectionFromScene はシーンの選択ブロックから選択状態を生成する。
func SelectionFromScene(scene *model.Scene) Selection {
	if scene == nil {
		return Selection{}
	}
	return Selection{
		ActiveName:    scene.Selection.ActiveName,
		SelectedNames: append([]string(nil), scene.Selection.SelectedNames...),
	}
}

// containsName は名前が選択一覧に含まれるか判定する。
func containsName(names []string, name string) bool {
	for _, candidate := range names {
		if candidate == name {
			return true
		}
	}
	return false
}

// validateActiveMesh はアクティブオブジェクトがメッシュであることを検証する。
func validateActiveMesh(host mhost.ISceneHost, selection Selection) error {
	if selection.ActiveName == "" {
		return model.NewSelectionError("アクティブオブジェクトがありません")
	}
	if !host.HasObject(selection.ActiveName) {
		return model.NewSelectionError("アクティブオブジェクトが見つかりません: %s", selection.ActiveName)
	}
	if !host.IsMesh(selection.ActiveName) {
		return model.NewSelectionError("アクティブオブジェクトがメッシュではありません: %s", selection.ActiveName)
	}
	return nil
}

// requireVertexGroups はアクティブメッシュの頂点グループ名を取得し、空を拒否する。
func requireVertexGroups(host mhost.ISceneHost, meshName string) ([]string, error) {
	groupNames, err := host.VertexGroupNames(meshName)
	if err != nil {
		return nil, err
	}
	if len(groupNames) == 0 {
		return nil, model.NewMissingDataError("アクティブメッシュに頂点グループがありません: %s", meshName)
	}
	return groupNames, nil
}

// requireArmatureReference はメッシュの参照アーマチュア名を取得し、未設定を拒否する。
func requireArmatureReference(host mhost.ISceneHost, meshName string) (string, error) {
	armatureName, err := host.ArmatureReference(meshName)
	if err != nil {
		return "", err
	}
	if armatureName == "" {
		return "", model.NewMissingDataError("アクティブメッシュにアーマチュア参照がありません: %s", meshName)
	}
	return armatureName, nil
}
