package core_test

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/arthur-debert/renumber/pkg/core"
	"github.com/arthur-debert/renumber/pkg/errors"
	"github.com/arthur-debert/renumber/pkg/testutil"
	"github.com/arthur-debert/renumber/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dir = "/photos"

func targets(plan *types.Plan) []string {
	out := make([]string, len(plan.Entries))
	for i, e := range plan.Entries {
		out[i] = e.TargetName
	}
	return out
}

func TestPreview_SequentialStems(t *testing.T) {
	names := []string{"zeta.jpg", "Alpha.png", "beta", "_x.txt", "éclair.gif", "Beta.JPG", "alpha.png"}
	fsys, mem := testutil.NewDirWithFiles(t, dir, names...)
	require.NoError(t, mem.MkdirAll(filepath.Join(dir, "sub"), 0755))

	plan, err := core.Preview(core.PreviewOptions{
		Directory:  dir,
		Naming:     types.SequentialNaming(),
		CaseMode:   core.CaseSensitive,
		FileSystem: fsys,
	})
	require.NoError(t, err)

	// byte order: upper case before '_' before lower case before non-ASCII
	wantSources := []string{"Alpha.png", "Beta.JPG", "_x.txt", "alpha.png", "beta", "zeta.jpg", "éclair.gif"}
	require.Equal(t, len(wantSources), plan.Len())
	for i, e := range plan.Entries {
		assert.Equal(t, wantSources[i], e.Source.Name)
		assert.Equal(t, fmt.Sprintf("%d%s", i+1, e.Source.Ext), e.TargetName)
	}

	// nothing touched
	assert.Len(t, testutil.ListNames(t, mem, dir), len(names)+1)
}

func TestPreview_PatternExamples(t *testing.T) {
	fsys, _ := testutil.NewDirWithFiles(t, dir, "b.png", "a.txt", "c.jpg")
	plan, err := core.Preview(core.PreviewOptions{
		Directory:  dir,
		Naming:     types.PatternNaming("file_{:03d}", 1),
		FileSystem: fsys,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"file_001.txt", "file_002.png", "file_003.jpg"}, targets(plan))

	fsys, _ = testutil.NewDirWithFiles(t, dir, "x.heic", "y.jpg")
	plan, err = core.Preview(core.PreviewOptions{
		Directory:  dir,
		Naming:     types.PatternNaming("photo", 5),
		FileSystem: fsys,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"photo5.heic", "photo6.jpg"}, targets(plan))
}

func TestPreview_NotADirectory(t *testing.T) {
	fsys, _ := testutil.NewDirWithFiles(t, dir, "a.txt")

	for _, path := range []string{"/missing", filepath.Join(dir, "a.txt")} {
		_, err := core.Preview(core.PreviewOptions{Directory: path, FileSystem: fsys})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotADirectory), path)
	}
}

func TestApply_Sequential(t *testing.T) {
	fsys, mem := testutil.NewDirWithFiles(t, dir, "b.png", "a.txt", "c.jpg")

	result, err := core.Apply(core.ApplyOptions{
		Directory:  dir,
		Naming:     types.SequentialNaming(),
		FileSystem: fsys,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.AppliedCount())
	assert.Equal(t, []string{"1.txt", "2.png", "3.jpg"}, testutil.ListNames(t, mem, dir))
}

func TestApply_TwiceIsNoop(t *testing.T) {
	fsys, mem := testutil.NewDirWithFiles(t, dir, "c", "b.md", "a.txt", "d.txt")
	opts := core.ApplyOptions{Directory: dir, Naming: types.SequentialNaming(), FileSystem: fsys}

	_, err := core.Apply(opts)
	require.NoError(t, err)
	first := testutil.ListNames(t, mem, dir)

	result, err := core.Apply(opts)
	require.NoError(t, err, "second run must not report a collision")
	assert.Equal(t, 0, result.AppliedCount())
	assert.Equal(t, 4, result.Unchanged)
	assert.Equal(t, first, testutil.ListNames(t, mem, dir))
}

func TestApply_RerunWithTenFilesStopsOnExistingTarget(t *testing.T) {
	names := make([]string, 10)
	for i := range names {
		names[i] = fmt.Sprintf("img_%02d.txt", i)
	}
	fsys, mem := testutil.NewDirWithFiles(t, dir, names...)
	opts := core.ApplyOptions{Directory: dir, Naming: types.SequentialNaming(), FileSystem: fsys}

	_, err := core.Apply(opts)
	require.NoError(t, err)
	first := testutil.ListNames(t, mem, dir)

	// byte order lists 10.txt right after 1.txt, so it is planned as 2.txt
	result, err := core.Apply(opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTargetExists), "got %v", err)
	assert.Equal(t, filepath.Join(dir, "10.txt"), errors.GetDetailString(err, errors.DetailSource))
	assert.Equal(t, filepath.Join(dir, "2.txt"), errors.GetDetailString(err, errors.DetailDestination))

	require.NotNil(t, result)
	assert.Equal(t, 0, result.AppliedCount())
	assert.Equal(t, 1, result.Unchanged)
	assert.Equal(t, first, testutil.ListNames(t, mem, dir))
	assert.Equal(t, "img_09.txt", testutil.ReadContent(t, mem, dir, "10.txt"))
}

func TestApply_CollisionRenamesNothing(t *testing.T) {
	fsys, mem := testutil.NewDirWithFiles(t, dir, "a.jpg", "b.jpg", "c.jpg")
	faulty := testutil.NewFaultyFS(fsys)

	result, err := core.Apply(core.ApplyOptions{
		Directory:  dir,
		Naming:     types.PatternNaming("same{{}}", 1),
		FileSystem: faulty,
	})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCollision))
	assert.Equal(t, "same{}.jpg", errors.GetDetailString(err, errors.DetailName))
	assert.Empty(t, faulty.RenameCalls())
	assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg"}, testutil.ListNames(t, mem, dir))
}

func TestApply_IllegalCharRenamesNothing(t *testing.T) {
	fsys, mem := testutil.NewDirWithFiles(t, dir, "a.jpg", "b.jpg")
	faulty := testutil.NewFaultyFS(fsys)

	_, err := core.Apply(core.ApplyOptions{
		Directory:  dir,
		Naming:     types.PatternNaming("why?_{}", 1),
		FileSystem: faulty,
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIllegalChar))
	assert.Empty(t, faulty.RenameCalls())
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, testutil.ListNames(t, mem, dir))
}

func TestApply_PartialFailure(t *testing.T) {
	fsys, mem := testutil.NewDirWithFiles(t, dir, "e.txt", "d.txt", "c.txt", "b.txt", "a.txt")
	faulty := testutil.NewFaultyFS(fsys).FailRename("c.txt", syscall.EPERM)

	result, err := core.Apply(core.ApplyOptions{
		Directory:  dir,
		Naming:     types.SequentialNaming(),
		FileSystem: faulty,
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRenameFailed))
	assert.Equal(t, filepath.Join(dir, "c.txt"), errors.GetDetailString(err, errors.DetailSource))
	assert.Equal(t, filepath.Join(dir, "3.txt"), errors.GetDetailString(err, errors.DetailDestination))

	require.NotNil(t, result)
	assert.Equal(t, 2, result.AppliedCount())
	assert.Equal(t, []string{"1.txt", "2.txt", "c.txt", "d.txt", "e.txt"}, testutil.ListNames(t, mem, dir))
	assert.Equal(t, "a.txt", testutil.ReadContent(t, mem, dir, "1.txt"))
	assert.Equal(t, "b.txt", testutil.ReadContent(t, mem, dir, "2.txt"))
}

func TestApply_CaseOnlyRename(t *testing.T) {
	fsys, mem := testutil.NewDirWithFiles(t, dir, "X1.txt")
	ci := testutil.NewCaseInsensitiveFS(fsys)

	result, err := core.Apply(core.ApplyOptions{
		Directory:  dir,
		Naming:     types.PatternNaming("x", 1),
		CaseMode:   core.CaseAuto,
		FileSystem: ci,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.AppliedCount())
	assert.Equal(t, []string{"x1.txt"}, testutil.ListNames(t, mem, dir))
}

func TestApply_CaseVariantsOnSensitiveFS(t *testing.T) {
	tmp := testutil.TempDirWithFiles(t, "X1.txt", "x1.txt")
	if len(testutil.OSNames(t, tmp)) != 2 {
		t.Skip("temp directory is case-insensitive")
	}

	for _, mode := range []core.CaseMode{core.CaseAuto, core.CaseSensitive} {
		result, err := core.Apply(core.ApplyOptions{
			Directory: tmp,
			Naming:    types.PatternNaming("x", 1),
			CaseMode:  mode,
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrTargetExists), "got %v", err)
		require.NotNil(t, result)
		assert.Equal(t, 0, result.AppliedCount())

		for _, name := range []string{"X1.txt", "x1.txt"} {
			data, err := os.ReadFile(filepath.Join(tmp, name))
			require.NoError(t, err)
			assert.Equal(t, name, string(data))
		}
	}
}

func TestPreview_CaseModes(t *testing.T) {
	fsys, _ := testutil.NewDirWithFiles(t, dir, "a.JPG", "b.jpg")
	ci := testutil.NewCaseInsensitiveFS(fsys)
	// same stem for every file; only the extension case differs
	naming := types.PatternNaming("img{{}}", 1)

	_, err := core.Preview(core.PreviewOptions{Directory: dir, Naming: naming, CaseMode: core.CaseSensitive, FileSystem: ci})
	assert.NoError(t, err)

	_, err = core.Preview(core.PreviewOptions{Directory: dir, Naming: naming, CaseMode: core.CaseInsensitive, FileSystem: fsys})
	assert.True(t, errors.IsErrorCode(err, errors.ErrCollision))

	_, err = core.Preview(core.PreviewOptions{Directory: dir, Naming: naming, CaseMode: core.CaseAuto, FileSystem: ci})
	assert.True(t, errors.IsErrorCode(err, errors.ErrCollision), "probe should detect the case-insensitive filesystem")

	_, err = core.Preview(core.PreviewOptions{Directory: dir, Naming: naming, CaseMode: core.CaseAuto, FileSystem: fsys})
	assert.NoError(t, err, "probe should detect the case-sensitive filesystem")
}

func TestParseCaseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    core.CaseMode
		wantErr bool
	}{
		{"", core.CaseAuto, false},
		{"auto", core.CaseAuto, false},
		{" Sensitive ", core.CaseSensitive, false},
		{"INSENSITIVE", core.CaseInsensitive, false},
		{"maybe", "", true},
	}
	for _, tt := range tests {
		got, err := core.ParseCaseMode(tt.in)
		if tt.wantErr {
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
