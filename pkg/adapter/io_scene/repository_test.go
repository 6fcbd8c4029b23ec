// 指示: miu200521358
package io_scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/miu200521358/mu_outfit_helper/pkg/usecase/port/mscene"
)

const sampleSceneJSON = `{
  "objects": [
    {
      "name": "Body",
      "type": "mesh",
      "parent": "Rig",
      "vertices": [
        {"position": [0, 0, 0]},
        {"position": [0, 1, 0]},
        {"position": [1, 0, 0]}
      ],
      "vertex_groups": [
        {"name": "Head", "weights": {"0": 1.0, "1": 0.5}},
        {"name": "Hand"}
      ],
      "armature_modifier": {"object": "Rig"}
    },
    {
      "name": "Rig",
      "type": "armature",
      "bones": [
        {"name": "Head", "position": [0, 1.5, 0]},
        {"name": "Hand", "parent": "Head", "position": [0.5, 1, 0]}
      ]
    }
  ],
  "selection": {"active": "Body", "selected": ["Body", "Rig"]}
}`

// writeSceneFile はテスト用シーンファイルを作成する。
func writeSceneFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	return path
}

func TestCanLoadByExtension(t *testing.T) {
	repository := NewSceneRepository()
	if !repository.CanLoad("scene.json") || !repository.CanLoad("SCENE.JSON") {
		t.Fatalf("expected .json to be loadable")
	}
	if repository.CanLoad("scene.vrm") {
		t.Fatalf("expected .vrm to be rejected")
	}
}

func TestInferName(t *testing.T) {
	repository := NewSceneRepository()
	if name := repository.InferName(filepath.Join("work", "avatar_scene.json")); name != "avatar_scene" {
		t.Fatalf("unexpected inferred name: %s", name)
	}
}

func TestLoadParsesSceneDocument(t *testing.T) {
	repository := NewSceneRepository()
	scene, err := repository.Load(writeSceneFile(t, sampleSceneJSON))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	body, exists := scene.MeshByName("Body")
	if !exists {
		t.Fatalf("expected mesh Body")
	}
	if body.VertexCount() != 3 {
		t.Fatalf("expected 3 vertices: got=%d", body.VertexCount())
	}
	head, _ := body.VertexGroupByName("Head")
	if head.Weights[0] != 1.0 || head.Weights[1] != 0.5 {
		t.Fatalf("unexpected weights: %+v", head.Weights)
	}
	if body.Modifier == nil || body.Modifier.ArmatureName != "Rig" {
		t.Fatalf("unexpected modifier: %+v", body.Modifier)
	}
	if body.ParentName != "Rig" {
		t.Fatalf("unexpected parent: %s", body.ParentName)
	}

	rig, exists := scene.ArmatureByName("Rig")
	if !exists {
		t.Fatalf("expected armature Rig")
	}
	hand, _ := rig.BoneByName("Hand")
	if hand.ParentName != "Head" {
		t.Fatalf("unexpected bone parent: %s", hand.ParentName)
	}
	if hand.Position.X != 0.5 || hand.Position.Y != 1 {
		t.Fatalf("unexpected bone position: %+v", hand.Position)
	}

	if scene.Selection.ActiveName != "Body" || len(scene.Selection.SelectedNames) != 2 {
		t.Fatalf("unexpected selection: %+v", scene.Selection)
	}
}

func TestLoadRejectsInvalidDocuments(t *testing.T) {
	cases := []struct {
		name    string
		content string
		keyword string
	}{
		{
			name:    "duplicate object name",
			content: `{"objects":[{"name":"A","type":"mesh"},{"name":"A","type":"armature"}]}`,
			keyword: "重複",
		},
		{
			name:    "unknown object type",
			content: `{"objects":[{"name":"A","type":"light"}]}`,
			keyword: "未対応",
		},
		{
			name:    "weight out of range",
			content: `{"objects":[{"name":"A","type":"mesh","vertices":[{"position":[0,0,0]}],"vertex_groups":[{"name":"G","weights":{"0":1.5}}]}]}`,
			keyword: "範囲外",
		},
		{
			name:    "vertex index beyond vertices",
			content: `{"objects":[{"name":"A","type":"mesh","vertices":[{"position":[0,0,0]}],"vertex_groups":[{"name":"G","weights":{"3":0.5}}]}]}`,
			keyword: "頂点数",
		},
		{
			name:    "invalid vertex index key",
			content: `{"objects":[{"name":"A","type":"mesh","vertices":[{"position":[0,0,0]}],"vertex_groups":[{"name":"G","weights":{"x":0.5}}]}]}`,
			keyword: "不正",
		},
		{
			name:    "duplicate bone name",
			content: `{"objects":[{"name":"A","type":"armature","bones":[{"name":"B","position":[0,0,0]},{"name":"B","position":[0,0,0]}]}]}`,
			keyword: "重複",
		},
	}

	repository := NewSceneRepository()
	for _, testCase := range cases {
		_, err := repository.Load(writeSceneFile(t, testCase.content))
		if err == nil {
			t.Fatalf("%s: expected error", testCase.name)
		}
		if !strings.Contains(err.Error(), testCase.keyword) {
			t.Fatalf("%s: unexpected error: %v", testCase.name, err)
		}
	}
}

func TestSaveAndReloadRoundTrip(t *testing.T) {
	repository := NewSceneRepository()
	scene, err := repository.Load(writeSceneFile(t, sampleSceneJSON))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	outPath := filepath.Join(t.TempDir(), "scene_out.json")
	if err := repository.Save(outPath, scene, mscene.SaveOptions{Indent: true}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	reloaded, err := repository.Load(outPath)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	body, _ := reloaded.MeshByName("Body")
	head, _ := body.VertexGroupByName("Head")
	if head.Weights[0] != 1.0 || head.Weights[1] != 0.5 {
		t.Fatalf("weights lost in round trip: %+v", head.Weights)
	}
	rig, _ := reloaded.ArmatureByName("Rig")
	if len(rig.Bones) != 2 {
		t.Fatalf("bones lost in round trip: %d", len(rig.Bones))
	}
	if reloaded.Selection.ActiveName != "Body" {
		t.Fatalf("selection lost in round trip: %+v", reloaded.Selection)
	}
}

func TestSaveRejectsNilScene(t *testing.T) {
	repository := NewSceneRepository()
	if err := repository.Save(filepath.Join(t.TempDir(), "x.json"), nil, mscene.SaveOptions{}); err == nil {
		t.Fatalf("expected nil scene error")
	}
}
