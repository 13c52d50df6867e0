package shell

import (
	"context"
	"fmt"

	"feature-feedback-board/internal/dto"
	"feature-feedback-board/internal/entity"

	"github.com/fatih/color"
)

type palette struct {
	title    *color.Color
	id       *color.Color
	muted    *color.Color
	err      *color.Color
	statuses map[entity.FeatureStatus]*color.Color
}

func newPalette(noColor bool) *palette {
	p := &palette{
		title: color.New(color.Bold),
		id:    color.New(color.FgHiBlack),
		muted: color.New(color.Faint),
		err:   color.New(color.FgRed, color.Bold),
		statuses: map[entity.FeatureStatus]*color.Color{
			entity.FeatureStatusOpen:      color.New(color.FgCyan),
			entity.FeatureStatusPlanned:   color.New(color.FgYellow),
			entity.FeatureStatusCompleted: color.New(color.FgGreen),
		},
	}
	if noColor {
		for _, c := range []*color.Color{p.title, p.id, p.muted, p.err} {
			c.DisableColor()
		}
		for _, c := range p.statuses {
			c.DisableColor()
		}
	}
	return p
}

func (p *palette) status(s entity.FeatureStatus) string {
	if c, ok := p.statuses[s]; ok {
		return c.Sprint(s.String())
	}
	return s.String()
}

func votes(n int) string {
	if n == 1 {
		return "1 vote"
	}
	return fmt.Sprintf("%d votes", n)
}

func (s *Shell) renderList(ctx context.Context, list *dto.FeatureListResponse) {
	switch {
	case list.IsBoardEmpty():
		fmt.Fprintln(s.out, s.style.muted.Sprint("No feature requests yet. Add one with: add <title> <description>"))
		return
	case list.IsFilteredOut():
		fmt.Fprintln(s.out, s.style.muted.Sprint("No features match the current filter."))
		return
	}

	fmt.Fprintf(s.out, "Showing %d of %d features (filter: %s, sort: %s)\n", list.Matched, list.Total, list.Filter, list.Sort)

	selectedId := ""
	if selected := s.svc.Selected(ctx); selected != nil {
		selectedId = selected.Id
	}
	for _, f := range list.Features {
		marker := " "
		if f.Id == selectedId {
			marker = "*"
		}
		fmt.Fprintf(s.out, "%s %-10s %-10s %9s  %s\n",
			marker,
			s.style.id.Sprint(f.Id),
			s.style.status(f.Status),
			votes(f.Votes),
			f.Title,
		)
	}
}

func (s *Shell) renderDetail(f *dto.FeatureResponse) {
	if f == nil {
		fmt.Fprintln(s.out, s.style.muted.Sprint("No feature selected."))
		return
	}
	fmt.Fprintf(s.out, "%s %s\n", s.style.title.Sprint(f.Title), s.style.id.Sprintf("(%s)", f.Id))
	fmt.Fprintf(s.out, "Status: %s\n", s.style.status(f.Status))
	fmt.Fprintf(s.out, "Votes:  %d\n", f.Votes)
	fmt.Fprintln(s.out, f.Description)
}
