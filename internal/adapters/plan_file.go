package adapters

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/gofrs/flock"

	"transition-planner/internal/ports"
	"transition-planner/internal/types"
)

const (
	PlanIntentFile       = "plan.intent"
	KeepListFile         = "to_keep.list"
	InstallListFile      = "to_install.list"
	RemoveListFile       = "to_remove.list"
	TransitionReportFile = "transition.report"
	UnaccountedListFile  = "unaccounted.list"

	planLockFile    = ".plan.lock"
	planLockTimeout = 5 * time.Second
)

// PlanFileAdapter writes a transition plan into Dir. Writers are
// serialized through a lock file in the same directory.
type PlanFileAdapter struct {
	Dir         string
	LockTimeout time.Duration
}

func NewPlanFileAdapter(dir string) PlanFileAdapter {
	return PlanFileAdapter{Dir: dir}
}

func (a PlanFileAdapter) WritePlan(plan types.PlanOutput) error {
	lock, err := a.acquireLock()
	if err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()

	if err := a.WritePlanIntent(plan.Intent); err != nil {
		return err
	}
	if err := a.WritePackageList(KeepListFile, plan.Keep); err != nil {
		return err
	}
	if err := a.WritePackageList(InstallListFile, plan.Install); err != nil {
		return err
	}
	if err := a.WritePackageList(RemoveListFile, plan.Remove); err != nil {
		return err
	}
	if err := a.WriteTransitionReport(plan.Report); err != nil {
		return err
	}
	return a.WriteUnaccounted(plan.Unaccounted)
}

func (a PlanFileAdapter) WritePlanIntent(intent types.PlanIntent) error {
	path, err := a.ensurePath(PlanIntentFile)
	if err != nil {
		return err
	}
	content := fmt.Sprintf(
		"plan_id=%s\ncreated_at=%s\nreleases=%s\nevents=%s\ninstalled=%s\n",
		intent.PlanID,
		intent.CreatedAt,
		intent.Releases,
		intent.Events,
		intent.Installed,
	)
	return writeFile(path, content)
}

func (a PlanFileAdapter) WritePackageList(filename string, pkgs []types.Package) error {
	path, err := a.ensurePath(filename)
	if err != nil {
		return err
	}
	ordered := append([]types.Package(nil), pkgs...)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Name < ordered[j].Name
	})
	var lines []string
	for _, pkg := range ordered {
		lines = append(lines, fmt.Sprintf("%s=%s", pkg.Name, pkg.Repository))
	}
	return writeFile(path, strings.Join(lines, "\n"))
}

func (a PlanFileAdapter) WriteTransitionReport(report types.TransitionReport) error {
	path, err := a.ensurePath(TransitionReportFile)
	if err != nil {
		return err
	}
	ordered := append([]types.ConflictRecord(nil), report.Records...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if cmp := ordered[i].Release.Compare(ordered[j].Release); cmp != 0 {
			return cmp < 0
		}
		if ordered[i].Package != ordered[j].Package {
			return ordered[i].Package < ordered[j].Package
		}
		return ordered[i].Kind < ordered[j].Kind
	})
	var lines []string
	for _, record := range ordered {
		lines = append(lines, fmt.Sprintf(
			"%s,%s,%s,%s",
			record.Release,
			record.Package,
			record.Kind,
			record.Origin,
		))
	}
	return writeFile(path, strings.Join(lines, "\n"))
}

func (a PlanFileAdapter) WriteUnaccounted(names []string) error {
	path, err := a.ensurePath(UnaccountedListFile)
	if err != nil {
		return err
	}
	ordered := append([]string(nil), names...)
	sort.Strings(ordered)
	return writeFile(path, strings.Join(ordered, "\n"))
}

func (a PlanFileAdapter) acquireLock() (*flock.Flock, error) {
	path, err := a.ensurePath(planLockFile)
	if err != nil {
		return nil, err
	}
	lock := flock.New(path)

	timeout := a.LockTimeout
	if timeout <= 0 {
		timeout = planLockTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	locked, err := lock.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to lock output directory").
			WithCause(err)
	}
	if !locked {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("output directory is locked by another writer: %s", path))
	}
	return lock, nil
}

func (a PlanFileAdapter) ensurePath(filename string) (string, error) {
	if a.Dir == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, filename), nil
}

func writeFile(path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to write %s", filepath.Base(path))).
			WithCause(err)
	}
	return nil
}

var _ ports.PlanWriterPort = PlanFileAdapter{}
