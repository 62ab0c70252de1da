package host

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/dergwasm/go-resonite/world"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"github.com/tetratelabs/wazero/sys"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// buildGuest compiles one of the example commands for wasip1.
func buildGuest(dir, pkg string) []byte {
	goBin, err := exec.LookPath("go")
	if err != nil {
		Skip("no go toolchain to build wasip1 guests with")
	}

	out := filepath.Join(dir, filepath.Base(pkg)+".wasm")
	cmd := exec.Command(goBin, "build", "-o", out, pkg)
	cmd.Dir = ".."
	cmd.Env = append(os.Environ(), "GOOS=wasip1", "GOARCH=wasm")
	output, err := cmd.CombinedOutput()
	Expect(err).To(BeNil(), string(output))

	wasm, err := os.ReadFile(out)
	Expect(err).To(BeNil())
	return wasm
}

// runGuest instantiates a guest against w and returns what it printed.
func runGuest(ctx context.Context, w *world.World, wasm []byte) (string, error) {
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	if _, err := wasi_snapshot_preview1.Instantiate(ctx, r); err != nil {
		return "", err
	}

	compiled, err := r.CompileModule(ctx, wasm)
	if err != nil {
		return "", err
	}

	env := CreateEnvironment(w, NewConfig())
	builder := r.NewHostModuleBuilder("env")
	if err := env.NewFunctionExporterForModule(compiled).ExportFunctions(builder); err != nil {
		return "", err
	}
	if _, err := builder.Instantiate(ctx); err != nil {
		return "", err
	}

	var stdout, stderr bytes.Buffer
	moduleConfig := wazero.NewModuleConfig().
		WithStdout(&stdout).
		WithStderr(&stderr).
		WithName("guest")

	_, err = r.InstantiateModule(env.Attach(ctx), compiled, moduleConfig)
	var exitErr *sys.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 0 {
		err = nil
	}
	if err != nil {
		return stdout.String(), errors.Join(err, errors.New(stderr.String()))
	}
	return stdout.String(), nil
}

var _ = Describe("Running Go guests", Ordered, func() {
	var (
		ctx        context.Context
		w          *world.World
		counter    []byte
		slotDumper []byte
	)

	BeforeAll(func() {
		dir := GinkgoT().TempDir()
		counter = buildGuest(dir, "./examples/counter")
		slotDumper = buildGuest(dir, "./examples/slot-dumper")
	})

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		w, err = world.LoadFixtureFile("../examples/host-runner/world.yaml")
		Expect(err).To(BeNil())
	})

	It("lets the guest increment a member", func() {
		count := w.Root().Children()[0].Children()[0].Components()[0].Member("Count")
		Expect(count.Int()).To(Equal(int32(0)))

		stdout, err := runGuest(ctx, w, counter)
		Expect(err).To(BeNil())
		Expect(stdout).To(Equal("count is now 1\n"))
		Expect(count.Int()).To(Equal(int32(1)))

		stdout, err = runGuest(ctx, w, counter)
		Expect(err).To(BeNil())
		Expect(stdout).To(Equal("count is now 2\n"))
	})

	It("reports a missing counter", func() {
		Expect(w.Root().Children()[0].Destroy()).To(Succeed())

		_, err := runGuest(ctx, w, counter)
		Expect(err).To(MatchError(ContainSubstring("no slot tagged counter")))
	})

	It("walks every slot with the names the host hands over", func() {
		stdout, err := runGuest(ctx, w, slotDumper)
		Expect(err).To(BeNil())

		lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
		Expect(lines[0]).To(Equal("Printing the slot tree:"))

		expected := []struct {
			indentation int
			name        string
		}{
			{0, "Root"},
			{1, "Scoreboard"},
			{2, "Display"},
			{1, "Lights"},
			{2, "Ceiling"},
			{2, "Desk"},
			{1, "User guest"},
			{2, "Head"},
		}
		Expect(lines[1:]).To(HaveLen(len(expected)))
		for i, slot := range expected {
			line := lines[i+1]
			Expect(line).To(HavePrefix(strings.Repeat(" ", slot.indentation)+"Slot"), line)
			Expect(line).ToNot(HavePrefix(strings.Repeat(" ", slot.indentation+1)), line)
			Expect(line).To(HaveSuffix(": "+slot.name), line)
		}
	})

	It("sees a rename made by the host", func() {
		Expect(w.SetSlotName(w.Root().Children()[1].ID().Raw(), "Lamps")).To(Succeed())

		stdout, err := runGuest(ctx, w, slotDumper)
		Expect(err).To(BeNil())
		Expect(stdout).To(ContainSubstring(": Lamps\n"))
		Expect(stdout).ToNot(ContainSubstring(": Lights\n"))
	})
})
