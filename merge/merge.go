// Package merge performs two- and three-way merges over complete
// filename -> content mappings.  It orchestrates git in a throwaway
// repository and works on flat text only; it knows nothing about the
// snep tree grammar.
package merge

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/snep-format/go-snep/debug"
)

// Options configures a merge.  The zero value is a non-interactive
// two-way merge.
type Options struct {
	// Base is the common-ancestor mapping for a three-way merge;
	// nil means two-way.
	Base map[string]string
	// Interactive hands conflicted work trees to a user shell
	// until the merge completes or the user quits.
	Interactive bool
	// Stdin and Stdout drive the interactive prompt; they default
	// to os.Stdin and os.Stdout.
	Stdin  io.Reader
	Stdout io.Writer
}

// Files merges two complete filename -> content mappings and returns
// the resolved mapping.  Conflicts fail with a *ConflictError unless
// Interactive is set; a cancelled interactive merge fails with
// ErrAborted.
func Files(left, right map[string]string, opts *Options) (map[string]string, error) {
	if opts == nil {
		opts = &Options{}
	}
	dir, err := os.MkdirTemp("", "snep-merge-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	g := &gitDir{dir: dir}
	if err := g.init(); err != nil {
		return nil, err
	}
	if opts.Base == nil {
		if err := g.commitBranch("left", "left", left); err != nil {
			return nil, err
		}
		if err := g.checkout("-q", "--orphan", "right"); err != nil {
			return nil, err
		}
		if err := g.run("reset", "--hard"); err != nil {
			return nil, err
		}
		if err := g.commit("right", right); err != nil {
			return nil, err
		}
	} else {
		if err := g.commitBranch("right", "base", opts.Base); err != nil {
			return nil, err
		}
		if err := g.commitBranch("left", "left", left); err != nil {
			return nil, err
		}
		if err := g.checkout("-q", "right"); err != nil {
			return nil, err
		}
		if err := g.commit("right", right); err != nil {
			return nil, err
		}
	}

	if err := g.checkout("-q", "left"); err != nil {
		return nil, err
	}
	if err := g.checkout("-q", "-b", "master"); err != nil {
		return nil, err
	}
	if g.merge() != nil {
		if !opts.Interactive {
			return nil, conflictError(g, left, right)
		}
		if err := interact(g, opts); err != nil {
			return nil, err
		}
	}
	return LoadTree(dir)
}

func interact(g *gitDir, opts *Options) error {
	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	for {
		fmt.Fprintf(stdout, "Run 'exit' to complete or cancel the merge.\n")
		if err := runShell(g.dir); err != nil {
			return err
		}
		if g.merge() == nil {
			return nil
		}
		fmt.Fprintf(stdout, "Merge is not complete.\n"+
			"Hint: Fix them up in the work tree, and then use 'git add/rm <file>'\n"+
			"      as appropriate to mark resolution and make a commit.\n")
		quit, err := askQuit(stdin, stdout)
		if err != nil {
			return err
		}
		if quit {
			return ErrAborted
		}
	}
}

func askQuit(stdin io.Reader, stdout io.Writer) (bool, error) {
	for {
		fmt.Fprintf(stdout, "[Q]uit or [C]ontinue merging? ")
		var response string
		if _, err := fmt.Fscanln(stdin, &response); err != nil {
			if err == io.EOF {
				return true, nil
			}
			continue
		}
		response = strings.ToLower(strings.TrimSpace(response))
		switch {
		case response != "" && strings.HasPrefix("quit", response):
			return true, nil
		case response != "" && strings.HasPrefix("continue", response):
			return false, nil
		}
		fmt.Fprintf(stdout, "Please type either Q or C.\n")
	}
}

func runShell(dir string) error {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "sh"
	}
	cmd := exec.Command(shell)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

type gitDir struct {
	dir string
}

func (g *gitDir) run(args ...string) error {
	cmd := exec.Command("git", append([]string{"-C", g.dir}, args...)...)
	out, err := cmd.CombinedOutput()
	if debug.Merge() {
		debug.Logf("git %s: %s\n", strings.Join(args, " "), out)
	}
	if err != nil {
		return fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (g *gitDir) init() error {
	if err := g.run("init", "-q"); err != nil {
		return err
	}
	if err := g.run("config", "user.name", "nobody"); err != nil {
		return err
	}
	return g.run("config", "user.email", "nobody@localhost.localdomain")
}

func (g *gitDir) checkout(args ...string) error {
	return g.run(append([]string{"checkout"}, args...)...)
}

func (g *gitDir) commit(msg string, files map[string]string) error {
	if err := SaveTree(g.dir, files); err != nil {
		return err
	}
	if err := g.run("add", "."); err != nil {
		return err
	}
	return g.run("commit", "-q", "--allow-empty", "-m", msg)
}

func (g *gitDir) commitBranch(branch, msg string, files map[string]string) error {
	if err := g.checkout("-q", "-b", branch); err != nil {
		return err
	}
	return g.commit(msg, files)
}

func (g *gitDir) merge() error {
	return g.run("merge", "right", "--allow-unrelated-histories", "-m", "merge")
}

func (g *gitDir) conflicted() ([]string, error) {
	cmd := exec.Command("git", "-C", g.dir, "diff", "--name-only", "--diff-filter=U")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git diff: %w", err)
	}
	var files []string
	for _, fn := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if fn != "" {
			files = append(files, fn)
		}
	}
	return files, nil
}
