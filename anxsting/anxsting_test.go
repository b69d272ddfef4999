package anxsting

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alex-bochkarev/anxiety"
)

type recorder struct {
	testing.TB
	errs []string
	logs []string
}

func (r *recorder) Helper() {}

func (r *recorder) Error(args ...any) { r.errs = append(r.errs, fmt.Sprint(args...)) }

func (r *recorder) Errorf(format string, args ...any) {
	r.errs = append(r.errs, fmt.Sprintf(format, args...))
}

func (r *recorder) Log(args ...any) { r.logs = append(r.logs, fmt.Sprint(args...)) }

func (r *recorder) Logf(format string, args ...any) {
	r.logs = append(r.logs, fmt.Sprintf(format, args...))
}

func writeDocs(t *testing.T, docs map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, text := range docs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(text), 0666))
	}
	return dir
}

func TestConsistent_same(t *testing.T) {
	dir := writeDocs(t, map[string]string{
		"a.tex": "% begin quote license\nMIT licensed\n% end quote\n",
		"b.tex": "Some text.\n% begin quote license\nMIT   licensed\n% end quote\n",
	})
	rec := &recorder{TB: t}
	require.NoError(t, Consistent(rec, filepath.Join(dir, "*.tex")))
	assert.Empty(t, rec.errs)
}

func TestConsistent_differ(t *testing.T) {
	dir := writeDocs(t, map[string]string{
		"a.tex": "% begin quote license\nMIT licensed\n% end quote\n",
		"b.tex": "% begin quote license\nBSD licensed\n% end quote\n",
		"c.tex": "% begin quote license\nGPL licensed\n% end quote\n",
	})
	rec := &recorder{TB: t}
	err := Consistent(rec, filepath.Join(dir, "*.tex"))
	assert.Equal(t, anxiety.DiffCount(2), err)
	require.Len(t, rec.errs, 3)
	assert.Contains(t, rec.errs[0], "quote 'license' differs")
	assert.Contains(t, rec.errs[0], "=== [begin of license] ")
	assert.Equal(t, "2 differing quotes", rec.errs[2])
}

func TestConsistent_limit(t *testing.T) {
	dir := writeDocs(t, map[string]string{
		"a.tex": "% begin quote q\none\n% end quote\n",
		"b.tex": "% begin quote q\ntwo\n% end quote\n",
		"c.tex": "% begin quote q\nthree\n% end quote\n",
	})
	cfg := Config{Config: anxiety.DefaultConfig(), DiffLimit: 1}
	rec := &recorder{TB: t}
	err := cfg.Consistent(rec, filepath.Join(dir, "*.tex"))
	assert.Equal(t, anxiety.DiffCount(1), err)
	assert.Len(t, rec.errs, 2)
}

func TestConsistent_tolerate(t *testing.T) {
	dir := writeDocs(t, map[string]string{
		"a.tex": "% begin quote q\none\n% end quote\n",
		"b.tex": "% begin quote q\ntwo\n% end quote\n",
	})
	t.Setenv(TolerateEnv, "^TestConsistent_tolerate$")
	rec := &recorder{TB: t}
	err := Consistent(rec, filepath.Join(dir, "*.tex"))
	assert.Equal(t, anxiety.DiffCount(1), err)
	assert.Empty(t, rec.errs)
	assert.NotEmpty(t, rec.logs)
}

func TestConsistent_scanError(t *testing.T) {
	dir := writeDocs(t, map[string]string{
		"a.tex": "% begin quote q\n% begin quote q\n",
	})
	rec := &recorder{TB: t}
	err := Consistent(rec, filepath.Join(dir, "a.tex"))
	require.ErrorIs(t, err, anxiety.ErrDuplicateOpen)
	require.Len(t, rec.errs, 1)
	assert.Contains(t, rec.errs[0], "a.tex:2: 'q': region is already open")
}
