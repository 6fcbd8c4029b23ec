// 指示: miu200521358
package minteractor

import (
	"sort"

	"github.com/miu200521358/mu_outfit_helper/pkg/domain/model"
	"github.com/miu200521358/mu_outfit_helper/pkg/usecase/port/mhost"
)

// TransferRequest は頂点グループ転送要求を表す。
type TransferRequest struct {
	Host      mhost.ISceneHost
	Selection Selection
}

// TransferResult は頂点グループ転送結果を表す。
type TransferResult struct {
	SourceName        string
	TargetName        string
	GroupCount        int
	SharedVertexCount int
	ArmatureName      string
}

// TransferVertexGroups はアクティブメッシュの頂点グループとアーマチュア参照を
// もう一方の選択メッシュへ複製する。同名グループは上書きする(後勝ち)。
// 事前条件をすべて検証してから書き込みに入り、検証失敗時は一切変更しない。
func (uc *OutfitUsecase) TransferVertexGroups(request TransferRequest) (*TransferResult, error) {
	host := request.Host
	selection := request.Selection

	if len(selection.SelectedNames) != 2 {
		return nil, model.NewSelectionError("選択オブジェクトは2つである必要があります: got=%d", len(selection.SelectedNames))
	}
	if !containsName(selection.SelectedNames, selection.ActiveName) {
		return nil, model.NewSelectionError("アクティブオブジェクトが選択に含まれていません: %s", selection.ActiveName)
	}
	if err := validateActiveMesh(host, selection); err != nil {
		return nil, err
	}
	groupNames, err := requireVertexGroups(host, selection.ActiveName)
	if err != nil {
		return nil, err
	}
	armatureName, err := requireArmatureReference(host, selection.ActiveName)
	if err != nil {
		return nil, err
	}

	targetName := otherSelectedName(selection)
	if targetName == "" {
		return nil, model.NewSelectionError("転送先オブジェクトが特定できません")
	}
	if !host.HasObject(targetName) {
		return nil, model.NewSelectionError("転送先オブジェクトが見つかりません: %s", targetName)
	}
	if !host.IsMesh(targetName) {
		return nil, model.NewSelectionError("転送先オブジェクトがメッシュではありません: %s", targetName)
	}

	sourceCount, err := host.VertexCount(selection.ActiveName)
	if err != nil {
		return nil, err
	}
	targetCount, err := host.VertexCount(targetName)
	if err != nil {
		return nil, err
	}
	sharedCount := sourceCount
	if targetCount < sharedCount {
		sharedCount = targetCount
	}

	for _, groupName := range groupNames {
		weights, err := host.VertexGroupWeights(selection.ActiveName, groupName)
		if err != nil {
			return nil, err
		}
		if err := host.ResetVertexGroup(targetName, groupName); err != nil {
			return nil, err
		}
		for _, vertexIndex := range sortedWeightIndexes(weights) {
			if vertexIndex >= sharedCount {
				continue
			}
			if err := host.SetVertexGroupWeight(targetName, groupName, vertexIndex, weights[vertexIndex]); err != nil {
				return nil, err
			}
		}
	}

	if err := host.BindArmature(targetName, armatureName); err != nil {
		return nil, err
	}

	return &TransferResult{
		SourceName:        selection.ActiveName,
		TargetName:        targetName,
		GroupCount:        len(groupNames),
		SharedVertexCount: sharedCount,
		ArmatureName:      armatureName,
	}, nil
}

// otherSelectedName は選択2つのうちアクティブでない方の名前を返す。
func otherSelectedName(selection Selection) string {
	for _, name := range selection.SelectedNames {
		if name != selection.ActiveName {
			return name
		}
	}
	return ""
}

// sortedWeightIndexes はウェイト写像の頂点indexを昇順で返す。
func sortedWeightIndexes(weights map[int]float64) []int {
	indexes := make([]int, 0, len(weights))
	for vertexIndex := range weights {
		indexes = append(indexes, vertexIndex)
	}
	sort.Ints(indexes)
	return indexes
}
