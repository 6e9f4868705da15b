package runner

import (
	"fmt"
	"runtime"
)

// Toolchain names the fixed source file and the argv used to build and run
// it. Both argvs are run inside the work area.
type Toolchain struct {
	Name       string
	SourceFile string
	Compile    []string // empty skips the compile step
	Run        []string
	Template   string // initial editor contents
}

func (t Toolchain) validate() error {
	if t.SourceFile == "" {
		return ErrNoSourceFile
	}
	if len(t.Run) == 0 {
		return ErrNoRunCommand
	}
	return nil
}

func Java() Toolchain {
	return Toolchain{
		Name:       "java",
		SourceFile: "Main.java",
		Compile:    []string{"javac", "Main.java"},
		Run:        []string{"java", "Main"},
		Template: `import java.util.*;

public class Main {
    public static void main(String[] args) {
        System.out.println("Hello from editor!");
    }
}`,
	}
}

func Go() Toolchain {
	bin := "main"
	if runtime.GOOS == "windows" {
		bin = "main.exe"
	}

	return Toolchain{
		Name:       "go",
		SourceFile: "main.go",
		Compile:    []string{"go", "build", "-o", bin, "main.go"},
		Run:        []string{"./" + bin},
		Template: `package main

import "fmt"

func main() {
	fmt.Println("Hello from editor!")
}`,
	}
}

// Shell checks syntax with sh -n as its compile step.
func Shell() Toolchain {
	return Toolchain{
		Name:       "shell",
		SourceFile: "main.sh",
		Compile:    []string{"sh", "-n", "main.sh"},
		Run:        []string{"sh", "main.sh"},
		Template:   `echo "Hello from editor!"`,
	}
}

// ByName returns one of the built-in toolchains.
func ByName(name string) (Toolchain, error) {
	switch name {
	case "java":
		return Java(), nil
	case "go":
		return Go(), nil
	case "shell", "sh":
		return Shell(), nil
	default:
		return Toolchain{}, fmt.Errorf("%w: %q", ErrUnknownToolchain, name)
	}
}
