package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t, `exit 0`)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, "2: --corr=0.8 | --corr=0.9")

	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected init to refuse overwriting")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, target)
	if err != nil {
		t.Fatalf("validate sample: %v", err)
	}
	requireContains(t, out, "3: --corr=0.8 | --corr=0.9 | --corr=0.7")
}

func TestConfigInitStdout(t *testing.T) {
	out, _, err := runCLI(t, []string{"config", "init", "--stdout"}, "")
	if err != nil {
		t.Fatalf("config init --stdout: %v", err)
	}
	requireContains(t, out, "[selection]")
	requireContains(t, out, "overlap_threshold = 0.9")
}

func TestConfigValidateWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, _, err := runCLI(t, []string{"config", "validate"}, "")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "defaults were used")
}

func TestConfigInitSkipsBrokenConfig(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.toml")
	if err := os.WriteFile(broken, []byte("not = [valid"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "fresh.toml")
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, broken); err != nil {
		t.Fatalf("config init should not load config: %v", err)
	}
}
