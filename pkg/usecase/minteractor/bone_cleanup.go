// 指示: miu200521358
package minteractor

import (
	"fmt"

	"github.com/miu200521358/mu_outfit_helper/pkg/usecase/port/mhost"
)

// BoneCleanupOptions は不要ボーン削除のオプションを表す。
type BoneCleanupOptions struct {
	// DuplicateArmature が真の場合、複製したアーマチュアへ削除を適用し
	// 元のアーマチュアは変更しない。
	DuplicateArmature bool
}

// DefaultBoneCleanupOptions は不要ボーン削除の既定オプションを返す。
func DefaultBoneCleanupOptions() BoneCleanupOptions {
	return BoneCleanupOptions{DuplicateArmature: true}
}

// BoneCleanupRequest は不要ボーン削除の計画要求を表す。
type BoneCleanupRequest struct {
	Host      mhost.ISceneHost
	Selection Selection
	Options   BoneCleanupOptions
}

// BoneCleanupPlan は不要ボーン削除の適用前計画を表す。
// 計画の算出はホストへ一切書き込まない。確認ダイアログで中止された場合は
// ApplyBoneCleanup を呼ばなければ何も変更されない。
type BoneCleanupPlan struct {
	MeshName          string
	ArmatureName      string
	DuplicateArmature bool
	RemoveBoneNames   []string
	KeepBoneNames     []string
}

// BoneCleanupResult は不要ボーン削除の適用結果を表す。
type BoneCleanupResult struct {
	WorkedArmatureName string
	DeletedBoneNames   []string
}

// PlanBoneCleanup はアクティブメッシュの頂点グループ名集合に含まれない
// ボーンの削除計画を算出する。
func (uc *OutfitUsecase) PlanBoneCleanup(request BoneCleanupRequest) (*BoneCleanupPlan, error) {
	host := request.Host
	selection := request.Selection

	if err := validateActiveMesh(host, selection); err != nil {
		return nil, err
	}
	armatureName, err := requireArmatureReference(host, selection.ActiveName)
	if err != nil {
		return nil, err
	}

	groupNames, err := host.VertexGroupNames(selection.ActiveName)
	if err != nil {
		return nil, err
	}
	usedNames := make(map[string]struct{}, len(groupNames))
	for _, groupName := range groupNames {
		usedNames[groupName] = struct{}{}
	}

	boneNames, err := host.BoneNames(armatureName)
	if err != nil {
		return nil, err
	}

	plan := &BoneCleanupPlan{
		MeshName:          selection.ActiveName,
		ArmatureName:      armatureName,
		DuplicateArmature: request.Options.DuplicateArmature,
	}
	for _, boneName := range boneNames {
		if _, used := usedNames[boneName]; used {
			plan.KeepBoneNames = append(plan.KeepBoneNames, boneName)
			continue
		}
		plan.RemoveBoneNames = append(plan.RemoveBoneNames, boneName)
	}
	return plan, nil
}

// ApplyBoneCleanup は確認済みの削除計画をホストへ適用する。
// 複製モードでは複製へ削除を適用し、メッシュの参照も複製へ付け替える。
func (uc *OutfitUsecase) ApplyBoneCleanup(host mhost.ISceneHost, plan *BoneCleanupPlan) (*BoneCleanupResult, error) {
	if plan == nil {
		return nil, fmt.Errorf("ボーン削除計画が未設定です")
	}

	workedName := plan.ArmatureName
	if plan.DuplicateArmature {
		duplicatedName, err := host.DuplicateArmature(plan.ArmatureName)
		if err != nil {
			return nil, err
		}
		if err := host.BindArmature(plan.MeshName, duplicatedName); err != nil {
			return nil, err
		}
		workedName = duplicatedName
	}

	deleted := make([]string, 0, len(plan.RemoveBoneNames))
	for _, boneName := range plan.RemoveBoneNames {
		if err := host.DeleteBone(workedName, boneName); err != nil {
			return nil, err
		}
		deleted = append(deleted, boneName)
	}

	return &BoneCleanupResult{
		WorkedArmatureName: workedName,
		DeletedBoneNames:   deleted,
	}, nil
}
