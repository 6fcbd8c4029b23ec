// 指示: miu200521358
package model

import "testing"

func TestResetVertexGroupCreatesAndClears(t *testing.T) {
	mesh := NewMeshObject("Body")

	group := mesh.ResetVertexGroup("Head")
	if group == nil || len(group.Weights) != 0 {
		t.Fatalf("expected empty group to be created: %+v", group)
	}
	group.Weights[0] = 1.0

	again := mesh.ResetVertexGroup("Head")
	if len(again.Weights) != 0 {
		t.Fatalf("expected weights to be cleared: %+v", again.Weights)
	}
	if len(mesh.VertexGroups) != 1 {
		t.Fatalf("expected single group: got=%d", len(mesh.VertexGroups))
	}
}

func TestResetVertexGroupKeepsSceneOrder(t *testing.T) {
	mesh := NewMeshObject("Body")
	mesh.ResetVertexGroup("Head")
	mesh.ResetVertexGroup("Hand")
	mesh.ResetVertexGroup("Head")

	names := mesh.VertexGroupNames()
	if len(names) != 2 || names[0] != "Head" || names[1] != "Hand" {
		t.Fatalf("unexpected group order: %v", names)
	}
}

func TestRemoveVertexGroup(t *testing.T) {
	mesh := NewMeshObject("Body")
	mesh.ResetVertexGroup("Head")
	mesh.ResetVertexGroup("Hand")

	if !mesh.RemoveVertexGroup("Head") {
		t.Fatalf("expected Head to be removed")
	}
	if mesh.RemoveVertexGroup("Head") {
		t.Fatalf("expected second removal to fail")
	}
	if _, exists := mesh.VertexGroupByName("Hand"); !exists {
		t.Fatalf("expected Hand to remain")
	}
}

func TestHasWeightedVertex(t *testing.T) {
	group := NewVertexGroup("Head")
	if group.HasWeightedVertex() {
		t.Fatalf("expected empty group to be unweighted")
	}
	group.Weights[0] = 0.0
	if group.HasWeightedVertex() {
		t.Fatalf("expected zero-only group to be unweighted")
	}
	group.Weights[1] = 0.5
	if !group.HasWeightedVertex() {
		t.Fatalf("expected weighted group")
	}
}
