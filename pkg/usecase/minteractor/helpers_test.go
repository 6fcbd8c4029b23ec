// 指示: miu200521358
package minteractor_test

import (
	"github.com/miu200521358/mu_outfit_helper/pkg/adapter/scene_host"
	"github.com/miu200521358/mu_outfit_helper/pkg/domain/model"
	"github.com/miu200521358/mu_outfit_helper/pkg/usecase/minteractor"
)

// newOutfitScene は素体メッシュ+衣装メッシュ+アーマチュアの基本シーンを生成する。
func newOutfitScene() *model.Scene {
	scene := model.NewScene()

	body := model.NewMeshObject("Body")
	body.Vertices = make([]model.Vertex, 3)
	head := body.ResetVertexGroup("Head")
	head.Weights[0] = 1.0
	head.Weights[1] = 0.5
	body.ResetVertexGroup("Hand")
	body.Modifier = &model.ArmatureModifier{ArmatureName: "Rig"}
	body.ParentName = "Rig"
	scene.AddMesh(body)

	outfit := model.NewMeshObject("Outfit")
	outfit.Vertices = make([]model.Vertex, 3)
	scene.AddMesh(outfit)

	rig := model.NewArmatureObject("Rig")
	rig.Bones = append(rig.Bones,
		model.NewBoneByName("Head"),
		model.NewBoneByName("Hand"),
		model.NewBoneByName("Tail"),
	)
	scene.AddArmature(rig)

	scene.Selection = model.SceneSelection{
		ActiveName:    "Body",
		SelectedNames: []string{"Body", "Outfit"},
	}
	return scene
}

// newTestHost はシーンを包むホストとユースケースを生成する。
func newTestHost(scene *model.Scene) (*scene_host.SceneHost, *minteractor.OutfitUsecase) {
	return scene_host.New(scene), minteractor.NewOutfitUsecase(minteractor.OutfitUsecaseDeps{})
}
