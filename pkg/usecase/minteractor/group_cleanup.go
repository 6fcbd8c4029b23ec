// 指示: miu200521358
package minteractor

import "github.com/miu200521358/mu_outfit_helper/pkg/usecase/port/mhost"

// GroupCleanupRequest は不要頂点グループ削除要求を表す。
type GroupCleanupRequest struct {
	Host      mhost.ISceneHost
	Selection Selection
}

// GroupCleanupResult は不要頂点グループ削除結果を表す。
type GroupCleanupResult struct {
	MeshName          string
	RemovedGroupNames []string
}

// CleanVertexGroups はアクティブメッシュから、正のウェイトを持つ頂点が
// 1つも無い頂点グループを削除する。ウェイト未登録のグループと
// 登録済みウェイトがすべて0のグループは同じ扱いとする。
func (uc *OutfitUsecase) CleanVertexGroups(request GroupCleanupRequest) (*GroupCleanupResult, error) {
	host := request.Host
	selection := request.Selection

	if err := validateActiveMesh(host, selection); err != nil {
		return nil, err
	}

	groupNames, err := host.VertexGroupNames(selection.ActiveName)
	if err != nil {
		return nil, err
	}

	removed := make([]string, 0, len(groupNames))
	for _, groupName := range groupNames {
		weights, err := host.VertexGroupWeights(selection.ActiveName, groupName)
		if err != nil {
			return nil, err
		}
		if hasPositiveWeight(weights) {
			continue
		}
		if err := host.RemoveVertexGroup(selection.ActiveName, groupName); err != nil {
			return nil, err
		}
		removed = append(removed, groupName)
	}

	return &GroupCleanupResult{
		MeshName:          selection.ActiveName,
		RemovedGroupNames: removed,
	}, nil
}

// hasPositiveWeight は正のウェイトが1つでも存在するか判定する。
func hasPositiveWeight(weights map[int]float64) bool {
	for _, weight := range weights {
		if weight > 0 {
			return true
		}
	}
	return false
}
