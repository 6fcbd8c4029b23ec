// 指示: miu200521358
// 手元のシーン一式に対して掃除計画だけをまとめて確認する開発用バッチ。
// ファイルへの書き込みは行わない。
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/miu200521358/mu_outfit_helper/pkg/adapter/io_scene"
	"github.com/miu200521358/mu_outfit_helper/pkg/adapter/scene_host"
	"github.com/miu200521358/mu_outfit_helper/pkg/usecase/minteractor"
)

// main は指定ディレクトリ配下のシーンJSONを巡回し、掃除計画を表示する。
func main() {
	dir := flag.String("dir", "", "シーンJSONを探すディレクトリ")
	flag.Parse()

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "シーンディレクトリを指定してください (-dir)")
		os.Exit(1)
	}

	paths, err := filepath.Glob(filepath.Join(*dir, "*.json"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "シーンJSONが見つかりません: %s\n", *dir)
		os.Exit(1)
	}

	repository := io_scene.NewSceneRepository()
	usecase := minteractor.NewOutfitUsecase(minteractor.OutfitUsecaseDeps{
		SceneReader: repository,
		SceneWriter: repository,
	})

	failed := 0
	for _, path := range paths {
		started := time.Now()
		if err := inspectScene(usecase, repository, path); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "[NG] %s: %v\n", path, err)
			continue
		}
		fmt.Printf("[OK] %s (%s)\n", path, time.Since(started).Round(time.Millisecond))
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// inspectScene は1シーン分の掃除計画を算出して表示する。
func inspectScene(usecase *minteractor.OutfitUsecase, repository *io_scene.SceneRepository, path string) error {
	scene, err := usecase.LoadScene(repository, path)
	if err != nil {
		return err
	}
	selection := minteractor.SelectionFromScene(scene)
	if selection.ActiveName == "" {
		return fmt.Errorf("選択ブロックにアクティブオブジェクトがありません")
	}
	host := scene_host.New(scene)

	groupNames, err := host.VertexGroupNames(selection.ActiveName)
	if err != nil {
		return err
	}
	unused := make([]string, 0, len(groupNames))
	for _, groupName := range groupNames {
		weights, err := host.VertexGroupWeights(selection.ActiveName, groupName)
		if err != nil {
			return err
		}
		used := false
		for _, weight := range weights {
			if weight > 0 {
				used = true
				break
			}
		}
		if !used {
			unused = append(unused, groupName)
		}
	}
	fmt.Printf("  未使用頂点グループ: %d件 %s\n", len(unused), strings.Join(unused, ", "))

	plan, err := usecase.PlanBoneCleanup(minteractor.BoneCleanupRequest{
		Host:      host,
		Selection: selection,
		Options:   minteractor.DefaultBoneCleanupOptions(),
	})
	if err != nil {
		return err
	}
	fmt.Printf("  未使用ボーン: %d件 (アーマチュア %s)\n", len(plan.RemoveBoneNames), plan.ArmatureName)
	return nil
}
