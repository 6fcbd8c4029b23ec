// 指示: miu200521358
package minteractor

import (
	"fmt"

	"github.com/miu200521358/mu_outfit_helper/pkg/domain/model"
	"github.com/miu200521358/mu_outfit_helper/pkg/usecase/port/mscene"
)

// LoadScene はシーンを読み込む。
func (uc *OutfitUsecase) LoadScene(rep mscene.ISceneReader, path string) (*model.Scene, error) {
	repo := rep
	if repo == nil {
		repo = uc.sceneReader
	}
	if repo == nil {
		return nil, fmt.Errorf("シーン読み込みリポジトリが設定されていません")
	}
	if !repo.CanLoad(path) {
		return nil, fmt.Errorf("入力形式が未対応です: %s", path)
	}
	scene, err := repo.Load(path)
	if err != nil {
		return nil, err
	}
	if scene == nil {
		return nil, fmt.Errorf("シーン読み込み結果が空です")
	}
	return scene, nil
}
