// Command debug_editor drives the math editor from stdin and prints the
// document after every step.
//
//	text          insert text
//	:key <v>      click a virtual key (e.g. :key √)
//	:static <v>   static panel action
//	:tab :stab :esc :bs :left :right :enter :clear
//	:focus <i>    focus structure i
//	:set <value>  replace the whole value
//	:q            quit
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"numero-be/pkg/mathkeyboard"

	"github.com/fatih/color"
)

var (
	latexColor     = color.New(color.FgCyan)
	structureColor = color.New(color.FgYellow)
	activeColor    = color.New(color.FgGreen, color.Bold)
	dimColor       = color.New(color.Faint)
)

func main() {
	e := mathkeyboard.NewEditor(mathkeyboard.WithOnChange(func(v string) {
		dimColor.Printf("  onChange: %q\n", v)
	}))

	color.Cyan("math editor debugger. Type :q to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if line == ":q" {
			return
		}
		if err := apply(e, line); err != nil {
			color.Red("error: %v", err)
			continue
		}
		printState(e)
	}
}

func apply(e *mathkeyboard.Editor, line string) error {
	if !strings.HasPrefix(line, ":") {
		e.InsertText(line)
		return nil
	}

	cmd, arg, _ := strings.Cut(line[1:], " ")
	switch cmd {
	case "key":
		e.HandleKeyClick(arg)
	case "static":
		e.HandleStaticAction(arg)
	case "tab":
		e.HandleKey(mathkeyboard.KeyEvent{Key: mathkeyboard.KeyTab})
	case "stab":
		e.HandleKey(mathkeyboard.KeyEvent{Key: mathkeyboard.KeyTab, Shift: true})
	case "esc":
		e.HandleKey(mathkeyboard.KeyEvent{Key: mathkeyboard.KeyEscape})
	case "bs":
		e.HandleKey(mathkeyboard.KeyEvent{Key: mathkeyboard.KeyBackspace})
	case "left":
		e.HandleKey(mathkeyboard.KeyEvent{Key: mathkeyboard.KeyArrowLeft})
	case "right":
		e.HandleKey(mathkeyboard.KeyEvent{Key: mathkeyboard.KeyArrowRight})
	case "enter":
		e.EnterStructure()
	case "clear":
		e.ClearAll()
	case "focus":
		i, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("focus needs a structure index")
		}
		e.FocusStructure(i)
	case "set":
		e.SetValue(arg)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func printState(e *mathkeyboard.Editor) {
	snap := e.Snapshot()
	for _, seg := range snap.Segments {
		switch {
		case seg.Kind == mathkeyboard.KindStructure && seg.Active:
			activeColor.Printf("[%s]", seg.Value)
		case seg.Kind == mathkeyboard.KindStructure:
			structureColor.Printf("[%s]", seg.Value)
		case seg.Kind == mathkeyboard.KindLatex:
			latexColor.Print(seg.Value)
		default:
			fmt.Print(seg.Value)
		}
	}
	fmt.Println()

	placeholder := "none"
	if snap.Active != nil {
		placeholder = fmt.Sprintf("%d/%d", snap.Active.StructureIndex, snap.Active.PlaceholderIndex)
	}
	dimColor.Printf("  cursor=%d/%d placeholder=%s value=%q\n", snap.Cursor, snap.TotalLength, placeholder, snap.Value)
}
