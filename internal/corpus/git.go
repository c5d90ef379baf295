package corpus

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// GitCloner shells out to the git binary.
type GitCloner struct {
	Binary string // defaults to "git"
}

// Clone runs `git clone --depth=N url dir`.
func (g GitCloner) Clone(ctx context.Context, url, dir string, depth int) error {
	bin := g.Binary
	if bin == "" {
		bin = "git"
	}
	cmd := exec.CommandContext(ctx, bin, "clone", "--quiet", "--depth="+strconv.Itoa(depth), url, dir)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("git clone %s: %w", url, ctx.Err())
		}
		return fmt.Errorf("git clone %s: %w: %s", url, err, strings.TrimSpace(string(out)))
	}
	return nil
}
