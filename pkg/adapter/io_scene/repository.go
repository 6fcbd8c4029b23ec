// 指示: miu200521358
// Package io_scene はシーンファイル(JSON)の読み書きを提供する。
package io_scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/miu200521358/mu_outfit_helper/pkg/domain/model"
	"github.com/miu200521358/mu_outfit_helper/pkg/usecase/port/mscene"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	objectTypeMesh     = "mesh"
	objectTypeArmature = "armature"
)

var _ mscene.ISceneReader = (*SceneRepository)(nil)
var _ mscene.ISceneWriter = (*SceneRepository)(nil)

// SceneRepository はJSONシーンファイルの読み書き契約を表す。
type SceneRepository struct{}

// NewSceneRepository はSceneRepositoryを生成する。
func NewSceneRepository() *SceneRepository {
	return &SceneRepository{}
}

// CanLoad は拡張子に応じて読み込み可否を判定する。
func (r *SceneRepository) CanLoad(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// InferName はパスから表示名を推定する。
func (r *SceneRepository) InferName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// sceneDocument はシーンファイルのルート構造を表す。
type sceneDocument struct {
	Objects   []objectDocument  `json:"objects"`
	Selection selectionDocument `json:"selection"`
}

// objectDocument はシーン内1オブジェクトを表す。
type objectDocument struct {
	Name             string                    `json:"name"`
	Type             string                    `json:"type"`
	Parent           string                    `json:"parent,omitempty"`
	Vertices         []vertexDocument          `json:"vertices,omitempty"`
	VertexGroups     []vertexGroupDocument     `json:"vertex_groups,omitempty"`
	ArmatureModifier *armatureModifierDocument `json:"armature_modifier,omitempty"`
	Bones            []boneDocument            `json:"bones,omitempty"`
}

// vertexDocument はメッシュ1頂点を表す。
type vertexDocument struct {
	Position [3]float64 `json:"position"`
}

// vertexGroupDocument は頂点グループ1件を表す。ウェイトのキーは頂点index。
type vertexGroupDocument struct {
	Name    string             `json:"name"`
	Weights map[string]float64 `json:"weights,omitempty"`
}

// armatureModifierDocument はアーマチュアモディファイアを表す。
type armatureModifierDocument struct {
	Object string `json:"object"`
}

// boneDocument はアーマチュア1ボーンを表す。
type boneDocument struct {
	Name     string     `json:"name"`
	Parent   string     `json:"parent,omitempty"`
	Position [3]float64 `json:"position"`
}

// selectionDocument は選択状態ブロックを表す。
type selectionDocument struct {
	Active   string   `json:"active,omitempty"`
	Selected []string `json:"selected,omitempty"`
}

// Load はJSONシーンファイルを読み込む。
func (r *SceneRepository) Load(path string) (*model.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("シーンファイルの読み込みに失敗しました: %w", err)
	}

	var doc sceneDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("シーンJSONの解析に失敗しました: %w", err)
	}
	return buildScene(doc)
}

// Save はシーンをJSONファイルへ保存する。
func (r *SceneRepository) Save(path string, scene *model.Scene, options mscene.SaveOptions) error {
	if scene == nil {
		return fmt.Errorf("保存対象シーンが未設定です")
	}

	doc := buildDocument(scene)
	var data []byte
	var err error
	if options.Indent {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("シーンJSONの生成に失敗しました: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("シーンファイルの保存に失敗しました: %w", err)
	}
	return nil
}

// buildScene はドキュメントからシーンを構築し、内容を検証する。
func buildScene(doc sceneDocument) (*model.Scene, error) {
	scene := model.NewScene()
	seenNames := map[string]struct{}{}

	for _, object := range doc.Objects {
		if strings.TrimSpace(object.Name) == "" {
			return nil, fmt.Errorf("名前が空のオブジェクトがあります")
		}
		if _, exists := seenNames[object.Name]; exists {
			return nil, fmt.Errorf("オブジェクト名が重複しています: %s", object.Name)
		}
		seenNames[object.Name] = struct{}{}

		switch object.Type {
		case objectTypeMesh:
			mesh, err := buildMesh(object)
			if err != nil {
				return nil, err
			}
			scene.AddMesh(mesh)
		case objectTypeArmature:
			armature, err := buildArmature(object)
			if err != nil {
				return nil, err
			}
			scene.AddArmature(armature)
		default:
			return nil, fmt.Errorf("未対応のオブジェクト種別です: %s type=%s", object.Name, object.Type)
		}
	}

	scene.Selection = model.SceneSelection{
		ActiveName:    doc.Selection.Active,
		SelectedNames: append([]string(nil), doc.Selection.Selected...),
	}
	return scene, nil
}

// buildMesh はドキュメントからメッシュを構築する。
func buildMesh(object objectDocument) (*model.MeshObject, error) {
	mesh := model.NewMeshObject(object.Name)
	mesh.ParentName = object.Parent
	for _, vertex := range object.Vertices {
		mesh.Vertices = append(mesh.Vertices, model.Vertex{
			Position: r3.Vec{X: vertex.Position[0], Y: vertex.Position[1], Z: vertex.Position[2]},
		})
	}
	for _, groupDoc := range object.VertexGroups {
		if strings.TrimSpace(groupDoc.Name) == "" {
			return nil, fmt.Errorf("名前が空の頂点グループがあります: %s", object.Name)
		}
		if _, exists := mesh.VertexGroupByName(groupDoc.Name); exists {
			return nil, fmt.Errorf("頂点グループ名が重複しています: %s/%s", object.Name, groupDoc.Name)
		}
		group := mesh.ResetVertexGroup(groupDoc.Name)
		for key, weight := range groupDoc.Weights {
			vertexIndex, err := strconv.Atoi(key)
			if err != nil || vertexIndex < 0 {
				return nil, fmt.Errorf("頂点indexが不正です: %s/%s key=%s", object.Name, groupDoc.Name, key)
			}
			if vertexIndex >= len(mesh.Vertices) {
				return nil, fmt.Errorf("頂点indexが頂点数を超えています: %s/%s index=%d", object.Name, groupDoc.Name, vertexIndex)
			}
			if weight < 0 || weight > 1 {
				return nil, fmt.Errorf("ウェイトが[0,1]の範囲外です: %s/%s index=%d weight=%f", object.Name, groupDoc.Name, vertexIndex, weight)
			}
			group.Weights[vertexIndex] = weight
		}
	}
	if object.ArmatureModifier != nil {
		mesh.Modifier = &model.ArmatureModifier{ArmatureName: object.ArmatureModifier.Object}
	}
	return mesh, nil
}

// buildArmature はドキュメントからアーマチュアを構築する。
func buildArmature(object objectDocument) (*model.ArmatureObject, error) {
	armature := model.NewArmatureObject(object.Name)
	for _, boneDoc := range object.Bones {
		if strings.TrimSpace(boneDoc.Name) == "" {
			return nil, fmt.Errorf("名前が空のボーンがあります: %s", object.Name)
		}
		if _, exists := armature.BoneByName(boneDoc.Name); exists {
			return nil, fmt.Errorf("ボーン名が重複しています: %s/%s", object.Name, boneDoc.Name)
		}
		bone := model.NewBoneByName(boneDoc.Name)
		bone.ParentName = boneDoc.Parent
		bone.Position = r3.Vec{X: boneDoc.Position[0], Y: boneDoc.Position[1], Z: boneDoc.Position[2]}
		armature.Bones = append(armature.Bones, bone)
	}
	return armature, nil
}

// buildDocument はシーンから保存用ドキュメントを構築する。
func buildDocument(scene *model.Scene) sceneDocument {
	doc := sceneDocument{
		Selection: selectionDocument{
			Active:   scene.Selection.ActiveName,
			Selected: scene.Selection.SelectedNames,
		},
	}
	for _, mesh := range scene.Meshes {
		object := objectDocument{
			Name:   mesh.Name,
			Type:   objectTypeMesh,
			Parent: mesh.ParentName,
		}
		for _, vertex := range mesh.Vertices {
			object.Vertices = append(object.Vertices, vertexDocument{
				Position: [3]float64{vertex.Position.X, vertex.Position.Y, vertex.Position.Z},
			})
		}
		for _, group := range mesh.VertexGroups {
			groupDoc := vertexGroupDocument{Name: group.Name}
			if len(group.Weights) > 0 {
				groupDoc.Weights = make(map[string]float64, len(group.Weights))
				for vertexIndex, weight := range group.Weights {
					groupDoc.Weights[strconv.Itoa(vertexIndex)] = weight
				}
			}
			object.VertexGroups = append(object.VertexGroups, groupDoc)
		}
		if mesh.Modifier != nil {
			object.ArmatureModifier = &armatureModifierDocument{Object: mesh.Modifier.ArmatureName}
		}
		doc.Objects = append(doc.Objects, object)
	}
	for _, armature := range scene.Armatures {
		object := objectDocument{
			Name: armature.Name,
			Type: objectTypeArmature,
		}
		for _, bone := range armature.Bones {
			object.Bones = append(object.Bones, boneDocument{
				Name:     bone.Name,
				Parent:   bone.ParentName,
				Position: [3]float64{bone.Position.X, bone.Position.Y, bone.Position.Z},
			})
		}
		doc.Objects = append(doc.Objects, object)
	}
	return doc
}
