// 指示: miu200521358
package minteractor

import "github.com/miu200521358/mu_outfit_helper/pkg/usecase/port/mscene"

// OutfitUsecaseDeps は衣装ヘルパーユースケースの依存を表す。
type OutfitUsecaseDeps struct {
	SceneReader mscene.ISceneReader
	SceneWriter mscene.ISceneWriter
}

// OutfitUsecase は頂点グループ転送と不要データ掃除をまとめたユースケースを表す。
type OutfitUsecase struct {
	sceneReader mscene.ISceneReader
	sceneWriter mscene.ISceneWriter
}

// NewOutfitUsecase は衣装ヘルパーユースケースを生成する。
func NewOutfitUsecase(deps OutfitUsecaseDeps) *OutfitUsecase {
	return &OutfitUsecase{
		sceneReader: deps.SceneReader,
		sceneWriter: deps.SceneWriter,
	}
}
