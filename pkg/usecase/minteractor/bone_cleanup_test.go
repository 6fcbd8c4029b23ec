// 指示: miu200521358
package minteractor_test

import (
	"errors"
	"testing"

	"github.com/miu200521358/mu_outfit_helper/pkg/domain/model"
	"github.com/miu200521358/mu_outfit_helper/pkg/usecase/minteractor"
)

func TestPlanBoneCleanupPartitionsBones(t *testing.T) {
	scene := newOutfitScene()
	host, usecase := newTestHost(scene)

	plan, err := usecase.PlanBoneCleanup(minteractor.BoneCleanupRequest{
		Host:      host,
		Selection: minteractor.SelectionFromScene(scene),
		Options:   minteractor.DefaultBoneCleanupOptions(),
	})
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}

	if plan.ArmatureName != "Rig" {
		t.Fatalf("expected armature Rig: got=%s", plan.ArmatureName)
	}
	if len(plan.RemoveBoneNames) != 1 || plan.RemoveBoneNames[0] != "Tail" {
		t.Fatalf("expected only Tail to be removed: %v", plan.RemoveBoneNames)
	}
	if len(plan.KeepBoneNames) != 2 {
		t.Fatalf("expected Head and Hand to be kept: %v", plan.KeepBoneNames)
	}
	if !plan.DuplicateArmature {
		t.Fatalf("expected duplicate mode by default")
	}

	// 計画段階では何も変更しない。
	rig, _ := scene.ArmatureByName("Rig")
	if len(rig.Bones) != 3 {
		t.Fatalf("expected plan to leave bones untouched: got=%d", len(rig.Bones))
	}
	if len(scene.Armatures) != 1 {
		t.Fatalf("expected plan to create no duplicate: got=%d", len(scene.Armatures))
	}
}

func TestApplyBoneCleanupInPlace(t *testing.T) {
	scene := newOutfitScene()
	host, usecase := newTestHost(scene)

	plan, err := usecase.PlanBoneCleanup(minteractor.BoneCleanupRequest{
		Host:      host,
		Selection: minteractor.SelectionFromScene(scene),
		Options:   minteractor.BoneCleanupOptions{DuplicateArmature: false},
	})
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}
	result, err := usecase.ApplyBoneCleanup(host, plan)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if result.WorkedArmatureName != "Rig" {
		t.Fatalf("expected in-place armature Rig: got=%s", result.WorkedArmatureName)
	}
	if len(result.DeletedBoneNames) != 1 || result.DeletedBoneNames[0] != "Tail" {
		t.Fatalf("unexpected deleted bones: %v", result.DeletedBoneNames)
	}

	rig, _ := scene.ArmatureByName("Rig")
	names := rig.BoneNames()
	if len(names) != 2 || names[0] != "Head" || names[1] != "Hand" {
		t.Fatalf("expected remaining bones to be group-name intersection: %v", names)
	}
}

func TestApplyBoneCleanupWithDuplicateKeepsOriginal(t *testing.T) {
	scene := newOutfitScene()
	host, usecase := newTestHost(scene)

	plan, err := usecase.PlanBoneCleanup(minteractor.BoneCleanupRequest{
		Host:      host,
		Selection: minteractor.SelectionFromScene(scene),
		Options:   minteractor.DefaultBoneCleanupOptions(),
	})
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}
	result, err := usecase.ApplyBoneCleanup(host, plan)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if result.WorkedArmatureName != "Rig_copy" {
		t.Fatalf("expected duplicate Rig_copy: got=%s", result.WorkedArmatureName)
	}

	original, _ := scene.ArmatureByName("Rig")
	if len(original.Bones) != 3 {
		t.Fatalf("expected original bones untouched: got=%d", len(original.Bones))
	}

	duplicated, exists := scene.ArmatureByName("Rig_copy")
	if !exists {
		t.Fatalf("expected duplicated armature to exist")
	}
	names := duplicated.BoneNames()
	if len(names) != 2 || names[0] != "Head" || names[1] != "Hand" {
		t.Fatalf("expected filtered bones on duplicate: %v", names)
	}

	body, _ := scene.MeshByName("Body")
	if body.Modifier == nil || body.Modifier.ArmatureName != "Rig_copy" {
		t.Fatalf("expected mesh modifier to point at duplicate: %+v", body.Modifier)
	}
	if body.ParentName != "Rig_copy" {
		t.Fatalf("expected mesh parent to point at duplicate: got=%s", body.ParentName)
	}
}

func TestApplyBoneCleanupDuplicateNameAvoidsCollision(t *testing.T) {
	scene := newOutfitScene()
	scene.AddArmature(model.NewArmatureObject("Rig_copy"))
	host, usecase := newTestHost(scene)

	plan, err := usecase.PlanBoneCleanup(minteractor.BoneCleanupRequest{
		Host:      host,
		Selection: minteractor.SelectionFromScene(scene),
		Options:   minteractor.DefaultBoneCleanupOptions(),
	})
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}
	result, err := usecase.ApplyBoneCleanup(host, plan)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if result.WorkedArmatureName != "Rig_copy2" {
		t.Fatalf("expected unique duplicate name: got=%s", result.WorkedArmatureName)
	}
}

func TestPlanBoneCleanupFallsBackToArmatureParent(t *testing.T) {
	scene := newOutfitScene()
	body, _ := scene.MeshByName("Body")
	body.Modifier = nil
	host, usecase := newTestHost(scene)

	plan, err := usecase.PlanBoneCleanup(minteractor.BoneCleanupRequest{
		Host:      host,
		Selection: minteractor.SelectionFromScene(scene),
		Options:   minteractor.DefaultBoneCleanupOptions(),
	})
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}
	if plan.ArmatureName != "Rig" {
		t.Fatalf("expected parent fallback to Rig: got=%s", plan.ArmatureName)
	}
}

func TestPlanBoneCleanupRequiresArmature(t *testing.T) {
	scene := newOutfitScene()
	body, _ := scene.MeshByName("Body")
	body.Modifier = nil
	body.ParentName = ""
	host, usecase := newTestHost(scene)

	_, err := usecase.PlanBoneCleanup(minteractor.BoneCleanupRequest{
		Host:      host,
		Selection: minteractor.SelectionFromScene(scene),
		Options:   minteractor.DefaultBoneCleanupOptions(),
	})
	var missingErr *model.MissingDataError
	if !errors.As(err, &missingErr) {
		t.Fatalf("expected MissingDataError: got=%v", err)
	}
}

func TestApplyBoneCleanupRequiresPlan(t *testing.T) {
	scene := newOutfitScene()
	host, usecase := newTestHost(scene)

	if _, err := usecase.ApplyBoneCleanup(host, nil); err == nil {
		t.Fatalf("expected error for nil plan")
	}
}
