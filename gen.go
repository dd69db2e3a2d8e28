//go:build gen
// +build gen

package main

import (
	"bytes"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
)

var projectRoot = sync.OnceValue(func() string {
	cmd := exec.Command("go", "list", "-f", "{{.Dir}}", "github.com/charlievieth/decasify")
	out, err := cmd.CombinedOutput()
	if err != nil {
		log.Fatalf("error running command %q: %v\n\n%s\n",
			cmd.Args, err, bytes.TrimSpace(out))
	}
	dir := string(bytes.TrimSpace(out))
	if _, err := os.Stat(dir); err != nil {
		log.Fatal(err)
	}
	return dir
})

func buildGen() string {
	gendir := filepath.Join(projectRoot(), "internal/gentables")
	if _, err := os.Stat(gendir); err != nil {
		log.Fatal(err)
	}

	exe := filepath.Join(projectRoot(), "bin", "gentables")
	if runtime.GOOS == "windows" {
		exe += ".exe"
	}

	cmd := exec.Command("go", "build", "-o", exe)
	cmd.Dir = gendir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		log.Fatalf("error running command %q: %v", cmd.Args, err)
	}
	return exe
}

func realMain(args []string) int {
	exe := buildGen()

	// The tables are only generated for the Unicode version of the Go
	// toolchain running this since the generated code is tested against
	// the unicode package.
	cmd := exec.Command(exe, args...)
	cmd.Dir = projectRoot()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		log.Printf("error running command %q: %v", cmd.Args, err)
		return 1
	}
	return 0
}

func main() {
	log.SetPrefix("gen: ")
	log.SetFlags(log.Lshortfile)
	if code := realMain(os.Args[1:]); code != 0 {
		log.Fatal("exit: ", code)
	}
}
