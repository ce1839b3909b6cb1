package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/lox/handrank/poker"
)

// EvalCmd classifies one or more hands.
type EvalCmd struct {
	Hands []string `arg:"" help:"Hands in card notation, e.g. 'AsKsQsJsTs' or 'Ah Kd 9c 9s 2h'" required:"true"`
}

func (cmd *EvalCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	hands, err := parseHands(cmd.Hands)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("category"),
		headerStyle.Render("tiebreak"),
		headerStyle.Render("suit"),
		headerStyle.Render("description"))

	for _, h := range hands {
		r := h.Evaluate()
		e.logger.Debug("Evaluated hand", "hand", h.String(), "ranking", r.String())

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			handStyle.Render(e.formatHand(h)),
			categoryStyle.Render(r.Category().String()),
			formatRanks(r.Tiebreak()),
			formatSuit(r, e.cfg.Symbols()),
			r.Description())
	}

	return w.Flush()
}

// parseHands parses each argument as a five-card hand.
func parseHands(args []string) ([]poker.Hand, error) {
	hands := make([]poker.Hand, 0, len(args))
	for i, arg := range args {
		h, err := poker.ParseHand(strings.TrimSpace(arg))
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		hands = append(hands, h)
	}
	return hands, nil
}
