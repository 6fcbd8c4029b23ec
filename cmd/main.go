// 指示: miu200521358
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_outfit_helper/pkg/adapter/io_scene"
	"github.com/miu200521358/mu_outfit_helper/pkg/adapter/mpresenter"
	"github.com/miu200521358/mu_outfit_helper/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_outfit_helper/pkg/adapter/scene_host"
	"github.com/miu200521358/mu_outfit_helper/pkg/domain/model"
	"github.com/miu200521358/mu_outfit_helper/pkg/infra/appconfig"
	"github.com/miu200521358/mu_outfit_helper/pkg/usecase/minteractor"
	"github.com/miu200521358/mu_outfit_helper/pkg/usecase/port/mscene"
)

// コマンド名一覧。メニュー項目1つにつき1コマンド。
const (
	commandTransfer    = "transfer"
	commandCleanGroups = "clean-groups"
	commandCleanBones  = "clean-bones"
)

// options はCLI引数を保持する。
type options struct {
	command       string
	scenePath     string
	outputPath    string
	activeName    string
	selectedNames []string
	duplicate     bool
	duplicateSet  bool
	assumeYes     bool
	configPath    string
	language      string
}

// main は衣装ヘルパーコマンドを実行する。
func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stdin, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run はCLI処理全体を実行する。
func run(args []string, out io.Writer, in io.Reader, errOut io.Writer) error {
	opts, err := parseOptions(args, errOut)
	if err != nil {
		return err
	}

	config, err := appconfig.Load(opts.configPath)
	if err != nil {
		return err
	}
	language := opts.language
	if language == "" {
		language = config.Language
	}
	presenter := mpresenter.New(language)

	repository := io_scene.NewSceneRepository()
	usecase := minteractor.NewOutfitUsecase(minteractor.OutfitUsecaseDeps{
		SceneReader: repository,
		SceneWriter: repository,
	})

	scene, err := usecase.LoadScene(nil, opts.scenePath)
	if err != nil {
		return fmt.Errorf("シーン読み込みに失敗しました: %w", err)
	}
	report(out, presenter.Sprintf(messages.ReportSceneLoaded, repository.InferName(opts.scenePath)))

	selection := resolveSelection(opts, scene)
	host := scene_host.New(scene)

	switch opts.command {
	case commandTransfer:
		result, err := usecase.TransferVertexGroups(minteractor.TransferRequest{
			Host:      host,
			Selection: selection,
		})
		if err != nil {
			return err
		}
		report(out, presenter.Sprintf(messages.ReportTransferDone,
			result.SourceName, result.TargetName, result.GroupCount, result.SharedVertexCount, result.ArmatureName))

	case commandCleanGroups:
		result, err := usecase.CleanVertexGroups(minteractor.GroupCleanupRequest{
			Host:      host,
			Selection: selection,
		})
		if err != nil {
			return err
		}
		if len(result.RemovedGroupNames) == 0 {
			report(out, presenter.Sprintf(messages.ReportNoUnusedGroups, result.MeshName))
		} else {
			report(out, presenter.Sprintf(messages.ReportGroupsRemoved,
				len(result.RemovedGroupNames), strings.Join(result.RemovedGroupNames, ", ")))
		}

	case commandCleanBones:
		confirmed, err := runBoneCleanup(usecase, host, selection, opts, config, presenter, out, in)
		if err != nil {
			return err
		}
		if !confirmed {
			// 中止時は出力ファイルを書かない。
			return nil
		}
	}

	outputPath, err := resolveOutputPath(opts.scenePath, opts.outputPath)
	if err != nil {
		return err
	}
	if err := ensureOutputDir(outputPath); err != nil {
		return err
	}
	if err := usecase.SaveScene(nil, outputPath, scene, mscene.SaveOptions{Indent: true}); err != nil {
		return fmt.Errorf("シーン保存に失敗しました: %w", err)
	}
	report(out, presenter.Sprintf(messages.ReportSceneSaved, outputPath))
	return nil
}

// runBoneCleanup は不要ボーン削除を計画・確認・適用する。中止時は偽を返す。
func runBoneCleanup(
	usecase *minteractor.OutfitUsecase,
	host *scene_host.SceneHost,
	selection minteractor.Selection,
	opts options,
	config appconfig.Config,
	presenter *mpresenter.Presenter,
	out io.Writer,
	in io.Reader,
) (bool, error) {
	duplicate := config.DuplicateArmatureOrDefault()
	if opts.duplicateSet {
		duplicate = opts.duplicate
	}

	plan, err := usecase.PlanBoneCleanup(minteractor.BoneCleanupRequest{
		Host:      host,
		Selection: selection,
		Options:   minteractor.BoneCleanupOptions{DuplicateArmature: duplicate},
	})
	if err != nil {
		return false, err
	}

	if len(plan.RemoveBoneNames) == 0 {
		// 削除対象が無ければ複製も行わない。
		report(out, presenter.Sprintf(messages.ReportBonePlanEmpty, plan.ArmatureName))
		return true, nil
	}
	report(out, presenter.Sprintf(messages.ReportBonePlanHeader, plan.ArmatureName, len(plan.RemoveBoneNames)))
	for _, boneName := range plan.RemoveBoneNames {
		fmt.Fprintln(out, presenter.Sprintf(messages.ReportBonePlanEntry, boneName))
	}
	if !opts.assumeYes && !config.AssumeYes {
		fmt.Fprint(out, presenter.Sprintf(messages.ReportConfirmPrompt))
		if !readConfirmation(in) {
			report(out, presenter.Sprintf(messages.ReportCleanupAborted))
			return false, nil
		}
	}

	result, err := usecase.ApplyBoneCleanup(host, plan)
	if err != nil {
		return false, err
	}
	report(out, presenter.Sprintf(messages.ReportBonesDeleted,
		len(result.DeletedBoneNames), strings.Join(result.DeletedBoneNames, ", ")))
	if plan.DuplicateArmature {
		report(out, presenter.Sprintf(messages.ReportWorkedDuplicate, result.WorkedArmatureName))
	}
	return true, nil
}

// readConfirmation は確認入力1行を読み、yのみ続行と判定する。
func readConfirmation(in io.Reader) bool {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}

// report は接頭辞付きで1行報告する。
func report(out io.Writer, text string) {
	fmt.Fprintf(out, "[mu_outfit_helper] %s\n", text)
}

// resolveSelection はCLI指定を優先し、無ければシーンの選択ブロックを使う。
func resolveSelection(opts options, scene *model.Scene) minteractor.Selection {
	selection := minteractor.SelectionFromScene(scene)
	if opts.activeName != "" {
		selection.ActiveName = opts.activeName
	}
	if len(opts.selectedNames) > 0 {
		selection.SelectedNames = opts.selectedNames
	}
	return selection
}

// parseOptions はCLI引数を解析する。
func parseOptions(args []string, errOut io.Writer) (options, error) {
	if len(args) == 0 {
		return options{}, fmt.Errorf("コマンドを指定してください (%s | %s | %s)", commandTransfer, commandCleanGroups, commandCleanBones)
	}
	command := args[0]
	switch command {
	case commandTransfer, commandCleanGroups, commandCleanBones:
	default:
		return options{}, fmt.Errorf("未対応のコマンドです: %s", command)
	}

	fs := flag.NewFlagSet("mu_outfit_helper", flag.ContinueOnError)
	fs.SetOutput(errOut)

	scenePath := fs.String("scene", "", "入力シーンJSONパス")
	outputPath := fs.String("out", "", "出力シーンJSONパス")
	activeName := fs.String("active", "", "アクティブオブジェクト名(省略時はシーンの選択ブロック)")
	selectedNames := fs.String("selected", "", "選択オブジェクト名のカンマ区切り(省略時はシーンの選択ブロック)")
	duplicate := fs.Bool("duplicate", true, "ボーン削除前にアーマチュアを複製する")
	assumeYes := fs.Bool("yes", false, "確認プロンプトを省略する")
	configPath := fs.String("config", "", "設定YAMLパス")
	language := fs.String("lang", "", "報告言語(BCP 47)")
	if err := fs.Parse(args[1:]); err != nil {
		return options{}, err
	}

	if *scenePath == "" && fs.NArg() > 0 {
		*scenePath = fs.Arg(0)
	}
	if *scenePath == "" {
		return options{}, fmt.Errorf("入力シーンJSONを指定してください (-scene)")
	}
	if !strings.EqualFold(filepath.Ext(*scenePath), ".json") {
		return options{}, fmt.Errorf("入力拡張子が .json ではありません: %s", *scenePath)
	}

	opts := options{
		command:    command,
		scenePath:  *scenePath,
		outputPath: *outputPath,
		activeName: *activeName,
		duplicate:  *duplicate,
		assumeYes:  *assumeYes,
		configPath: *configPath,
		language:   *language,
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "duplicate" {
			opts.duplicateSet = true
		}
	})
	if *selectedNames != "" {
		for _, name := range strings.Split(*selectedNames, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				opts.selectedNames = append(opts.selectedNames, name)
			}
		}
	}
	return opts, nil
}

// resolveOutputPath は出力シーンパスを解決する。
func resolveOutputPath(scenePath string, outputPath string) (string, error) {
	if strings.TrimSpace(outputPath) == "" {
		dir := filepath.Dir(scenePath)
		base := strings.TrimSuffix(filepath.Base(scenePath), filepath.Ext(scenePath))
		return filepath.Join(dir, base+"_out.json"), nil
	}
	if !strings.EqualFold(filepath.Ext(outputPath), ".json") {
		return "", fmt.Errorf("出力拡張子が .json ではありません: %s", outputPath)
	}
	return outputPath, nil
}

// ensureOutputDir は出力先ディレクトリを作成する。
func ensureOutputDir(outputPath string) error {
	dir := filepath.Dir(outputPath)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("出力先ディレクトリの作成に失敗しました: %w", err)
	}
	return nil
}
