package report

import (
	"math"
	"slices"

	"github.com/openkraft/a11ykraft/internal/domain"
)

// TopIssueLimit caps Summary.TopIssues.
const TopIssueLimit = 5

// Summarize rolls reports up into counts, an average score and the most
// frequent blocking issue titles. Ties keep first-seen order.
func Summarize(reports []domain.Report) domain.Summary {
	s := domain.Summary{
		TotalComponents:  len(reports),
		IssuesBySeverity: make(map[domain.Severity]int, len(domain.ValidSeverities)),
		TopIssues:        []domain.IssueFrequency{},
	}
	for _, sev := range domain.ValidSeverities {
		s.IssuesBySeverity[sev] = 0
	}
	if len(reports) == 0 {
		return s
	}

	total := 0
	var freq []domain.IssueFrequency
	index := map[string]int{}
	for _, r := range reports {
		total += r.Score
		if r.Passed {
			s.PassedComponents++
		} else {
			s.FailedComponents++
		}
		for _, f := range r.Findings() {
			s.IssuesBySeverity[f.Severity]++
		}
		for _, i := range r.Issues {
			if !i.Severity.Blocking() {
				continue
			}
			pos, seen := index[i.Title]
			if !seen {
				pos = len(freq)
				index[i.Title] = pos
				freq = append(freq, domain.IssueFrequency{Title: i.Title})
			}
			freq[pos].Count++
			if !slices.Contains(freq[pos].Components, r.Component) {
				freq[pos].Components = append(freq[pos].Components, r.Component)
			}
		}
	}
	s.AverageScore = int(math.Round(float64(total) / float64(len(reports))))

	slices.SortStableFunc(freq, func(a, b domain.IssueFrequency) int {
		return b.Count - a.Count
	})
	if len(freq) > TopIssueLimit {
		freq = freq[:TopIssueLimit]
	}
	if freq != nil {
		s.TopIssues = freq
	}
	return s
}
