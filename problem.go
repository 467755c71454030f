package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// A problem is a goal to derive from axioms, as text.
type problem struct {
	goal   string
	axioms []string
}

var goalPrefixes = []string{"|-", "⊢"}

// readProblem reads a problem with one formula per line.
func readProblem(r io.Reader) (*problem, error) {
	var pb problem
	sc := bufio.NewScanner(r)
	nb := 0
	for sc.Scan() {
		nb++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == ';' {
			continue
		}
		if goal, ok := trimGoal(line); ok {
			if pb.goal != "" {
				return nil, fmt.Errorf("line %d: goal already given on a previous line", nb)
			}
			if goal == "" {
				return nil, fmt.Errorf("line %d: empty goal", nb)
			}
			pb.goal = goal
			continue
		}
		pb.axioms = append(pb.axioms, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &pb, nil
}

func trimGoal(line string) (string, bool) {
	for _, prefix := range goalPrefixes {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(line[len(prefix):]), true
		}
	}
	return "", false
}

// merge adds the formulas given on the command line to pb.
func (pb *problem) merge(goal string, axioms []string) error {
	if goal != "" {
		if pb.goal != "" {
			return fmt.Errorf("goal given both in the problem file and on the command line")
		}
		pb.goal = goal
	}
	pb.axioms = append(pb.axioms, axioms...)
	return nil
}

// formulas returns the axioms then the goal, if any.
func (pb *problem) formulas() []string {
	res := append([]string(nil), pb.axioms...)
	if pb.goal != "" {
		res = append(res, pb.goal)
	}
	return res
}
