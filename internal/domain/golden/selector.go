package golden

import (
	"errors"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/uiforge/uiforge/internal/domain"
)

// RankedComponent is a project component ranked by its example score.
// The score is a weighted composite of five dimensions that measure how
// representative a file is of the project's component conventions,
// making it a good few-shot example for generation.
type RankedComponent struct {
	File           domain.ComponentFile
	Score          float64
	ScoreBreakdown map[string]float64
}

// Weights for each scoring dimension.
const (
	weightLocation  = 0.30
	weightSizeFit   = 0.25
	weightNaming    = 0.20
	weightRecency   = 0.15
	weightExtension = 0.10
)

// Example size sweet spot in bytes. Tiny files carry no conventions;
// huge ones blow the prompt budget.
const (
	minExampleSize  = 300
	idealSizeFloor  = 800
	idealSizeCeil   = 8000
	recencyHalfLife = 180 * 24 * time.Hour
)

// SelectBest ranks every scanned component and returns the top one. It
// returns an error when the scan found nothing rankable.
func SelectBest(scan *domain.ScanResult, componentDir string) (*RankedComponent, error) {
	ranked, err := SelectExamples(scan, componentDir, 1)
	if err != nil {
		return nil, err
	}
	return &ranked[0], nil
}

// SelectExamples returns the top-ranked components, best first, capped
// at limit. Components that score zero on naming (index files, tests,
// stories) are excluded entirely.
func SelectExamples(scan *domain.ScanResult, componentDir string, limit int) ([]RankedComponent, error) {
	if scan == nil || len(scan.Components) == 0 {
		return nil, errors.New("no components to rank")
	}
	if limit <= 0 {
		limit = 3
	}

	newest := time.Time{}
	for _, f := range scan.Components {
		if f.ModTime.After(newest) {
			newest = f.ModTime
		}
	}

	var ranked []RankedComponent
	for _, f := range scan.Components {
		rc := ScoreComponent(f, componentDir, newest)
		if rc.ScoreBreakdown["naming"] == 0 {
			continue
		}
		ranked = append(ranked, rc)
	}
	if len(ranked) == 0 {
		return nil, errors.New("no components to rank")
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].File.RelativePath < ranked[j].File.RelativePath
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// ScoreComponent computes the example score for a single component.
// Exported so callers can rank all components individually.
func ScoreComponent(f domain.ComponentFile, componentDir string, newest time.Time) RankedComponent {
	breakdown := map[string]float64{
		"location":  scoreLocation(f.RelativePath, componentDir),
		"size_fit":  scoreSizeFit(f.Size),
		"naming":    scoreNaming(f.RelativePath),
		"recency":   scoreRecency(f.ModTime, newest),
		"extension": scoreExtension(f.RelativePath),
	}

	total := breakdown["location"]*weightLocation +
		breakdown["size_fit"]*weightSizeFit +
		breakdown["naming"]*weightNaming +
		breakdown["recency"]*weightRecency +
		breakdown["extension"]*weightExtension

	return RankedComponent{File: f, Score: total, ScoreBreakdown: breakdown}
}

// scoreLocation prefers files under the project's configured component
// directory; other conventional spots rank below it.
func scoreLocation(relPath, componentDir string) float64 {
	p := filepath.ToSlash(relPath)
	if componentDir != "" {
		dir := strings.Trim(filepath.ToSlash(componentDir), "/")
		if strings.HasPrefix(p, dir+"/") {
			return 1.0
		}
	}
	switch {
	case strings.Contains(p, "components/"):
		return 0.7
	case strings.HasPrefix(p, "src/"):
		return 0.4
	default:
		return 0.2
	}
}

// scoreSizeFit peaks inside the sweet spot and tapers on both sides.
func scoreSizeFit(size int64) float64 {
	switch {
	case size < minExampleSize:
		return 0
	case size < idealSizeFloor:
		return float64(size-minExampleSize) / float64(idealSizeFloor-minExampleSize)
	case size <= idealSizeCeil:
		return 1.0
	default:
		return float64(idealSizeCeil) / float64(size)
	}
}

var pascalBase = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)

// scoreNaming rates the file basename. Index files, tests, and stories
// are not components and score zero.
func scoreNaming(relPath string) float64 {
	base := filepath.Base(filepath.ToSlash(relPath))
	name := strings.TrimSuffix(base, filepath.Ext(base))
	lower := strings.ToLower(name)
	switch {
	case lower == "index",
		strings.HasSuffix(lower, ".test"),
		strings.HasSuffix(lower, ".spec"),
		strings.HasSuffix(lower, ".stories"):
		return 0
	case pascalBase.MatchString(name):
		return 1.0
	default:
		return 0.6
	}
}

// scoreRecency decays linearly from the newest file over the half-life
// window, with a floor so old but otherwise good examples stay viable.
func scoreRecency(mod, newest time.Time) float64 {
	if newest.IsZero() || mod.IsZero() {
		return 0.5
	}
	age := newest.Sub(mod)
	if age <= 0 {
		return 1.0
	}
	if age >= recencyHalfLife {
		return 0.2
	}
	return 1.0 - 0.8*float64(age)/float64(recencyHalfLife)
}

func scoreExtension(relPath string) float64 {
	switch strings.ToLower(filepath.Ext(relPath)) {
	case ".tsx":
		return 1.0
	case ".jsx":
		return 0.6
	default:
		return 0.3
	}
}
