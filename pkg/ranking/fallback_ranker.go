package ranking

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"hireup-be/internal/entity"
)

// FallbackRanker scores applicants by skill overlap with the job. It keeps
// ranking available when the remote provider is down or unconfigured.
type FallbackRanker struct{}

func NewFallbackRanker() *FallbackRanker {
	return &FallbackRanker{}
}

func (r *FallbackRanker) Rank(
	ctx context.Context,
	job *entity.Job,
	applicants []*entity.ApplicantView,
	prompt string,
) ([]entity.RankedCandidate, error) {
	required := make(map[string]bool, len(job.Skills))
	for _, skill := range job.Skills {
		required[strings.ToLower(strings.TrimSpace(skill))] = true
	}

	ranked := make([]entity.RankedCandidate, 0, len(applicants))
	for _, applicant := range applicants {
		matched := make([]string, 0)
		for _, skill := range applicant.Skills {
			if required[strings.ToLower(strings.TrimSpace(skill))] {
				matched = append(matched, skill)
			}
		}

		score := 0.0
		if len(required) > 0 {
			score = float64(100*len(matched)) / float64(len(required))
		}
		reasoning := "No direct skill match with the job requirements"
		if len(matched) > 0 {
			reasoning = "Matched skills: " + strings.Join(matched, ", ")
		}

		ranked = append(ranked, entity.RankedCandidate{
			UserId:    applicant.UserId,
			Name:      applicant.UserName,
			Skills:    applicant.Skills,
			Score:     score,
			Reasoning: reasoning,
		})
	}

	// Stable so equally scored applicants keep application order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked, nil
}

func (r *FallbackRanker) AnalyzeSkills(
	ctx context.Context,
	mode AnalysisMode,
	job *entity.Job,
	applicants []*entity.ApplicantView,
	prompt string,
) (string, error) {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, applicant := range applicants {
		for _, skill := range applicant.Skills {
			key := strings.ToLower(strings.TrimSpace(skill))
			if key == "" {
				continue
			}
			if counts[key] == 0 {
				order = append(order, key)
			}
			counts[key]++
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	var sb strings.Builder
	sb.WriteString("Skill distribution across ")
	sb.WriteString(strconv.Itoa(len(applicants)))
	sb.WriteString(" applicant(s):\n")
	for _, skill := range order {
		sb.WriteString("- ")
		sb.WriteString(skill)
		sb.WriteString(": ")
		sb.WriteString(strconv.Itoa(counts[skill]))
		sb.WriteString("\n")
	}
	if mode == ModeJobSpecific && job != nil {
		missing := make([]string, 0)
		for _, skill := range job.Skills {
			if counts[strings.ToLower(strings.TrimSpace(skill))] == 0 {
				missing = append(missing, skill)
			}
		}
		if len(missing) > 0 {
			sb.WriteString("Required skills with no coverage: ")
			sb.WriteString(strings.Join(missing, ", "))
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}
