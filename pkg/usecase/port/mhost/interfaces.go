// 指示: miu200521358
// Package mhost はホストアプリケーションのシーン操作能力の契約を提供する。
package mhost

// ISceneHost はコマンドが必要とするホスト側の読み書き能力を表す。
// ユースケースはこの契約だけに依存し、実体がホスト本体かインメモリの
// 代替かを問わない。
type ISceneHost interface {
	// HasObject は名前のオブジェクトが存在するか判定する。
	HasObject(name string) bool
	// IsMesh は名前のオブジェクトがメッシュか判定する。
	IsMesh(name string) bool
	// IsArmature は名前のオブジェクトがアーマチュアか判定する。
	IsArmature(name string) bool

	// VertexCount はメッシュの頂点数を返す。
	VertexCount(meshName string) (int, error)
	// VertexGroupNames はメッシュの頂点グループ名をシーン順で返す。
	VertexGroupNames(meshName string) ([]string, error)
	// VertexGroupWeights は頂点グループのウェイト写像の複製を返す。
	VertexGroupWeights(meshName string, groupName string) (map[int]float64, error)
	// ResetVertexGroup は同名グループを空ウェイトで作り直す。無ければ新設する。
	ResetVertexGroup(meshName string, groupName string) error
	// SetVertexGroupWeight は頂点グループの1頂点ウェイトを設定する。
	SetVertexGroupWeight(meshName string, groupName string, vertexIndex int, weight float64) error
	// RemoveVertexGroup は頂点グループを削除する。
	RemoveVertexGroup(meshName string, groupName string) error

	// ArmatureReference はメッシュが参照するアーマチュア名を返す。
	// アーマチュアモディファイアを優先し、無ければアーマチュア親を使う。
	// どちらも無い場合は空文字を返す。
	ArmatureReference(meshName string) (string, error)
	// BindArmature はメッシュのモディファイア参照と親参照をアーマチュアへ向ける。
	// モディファイアが無ければ新設する。
	BindArmature(meshName string, armatureName string) error

	// BoneNames はアーマチュアのボーン名をシーン順で返す。
	BoneNames(armatureName string) ([]string, error)
	// DeleteBone はアーマチュアからボーンを削除する。
	DeleteBone(armatureName string, boneName string) error
	// DuplicateArmature はアーマチュアを複製し、複製の一意な名前を返す。
	DuplicateArmature(armatureName string) (string, error)
}
