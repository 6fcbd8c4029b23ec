// 指示: miu200521358
package model

import "gonum.org/v1/gonum/spatial/r3"

// Bone はアーマチュアの1ボーンを表す。
type Bone struct {
	Name       string
	ParentName string
	Position   r3.Vec
}

// NewBoneByName は名前だけを設定したボーンを生成する。
func NewBoneByName(name string) *Bone {
	return &Bone{Name: name}
}

// ArmatureObject は名前付きボーン集合を持つアーマチュアオブジェクトを表す。
type ArmatureObject struct {
	Name  string
	Bones []*Bone
}

// NewArmatureObject はアーマチュアオブジェクトを生成する。
func NewArmatureObject(name string) *ArmatureObject {
	return &ArmatureObject{Name: name}
}

// BoneNames はボーン名をシーン順で返す。
func (a *ArmatureObject) BoneNames() []string {
	if a == nil {
		return nil
	}
	names := make([]string, 0, len(a.Bones))
	for _, bone := range a.Bones {
		names = append(names, bone.Name)
	}
	return names
}

// BoneByName は名前一致のボーンを返す。
func (a *ArmatureObject) BoneByName(name string) (*Bone, bool) {
	if a == nil {
		return nil, false
	}
	for _, bone := range a.Bones {
		if bone.Name == name {
			return bone, true
		}
	}
	return nil, false
}

// RemoveBone は名前一致のボーンを削除する。子ボーンの親参照は保持したままにする。
func (a *ArmatureObject) RemoveBone(name string) bool {
	if a == nil {
		return false
	}
	for i, bone := range a.Bones {
		if bone.Name == name {
			a.Bones = append(a.Bones[:i], a.Bones[i+1:]...)
			return true
		}
	}
	return false
}
