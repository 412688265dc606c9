// Command doorsim runs the door-traversal demo: a behavior tree that
// collects a building's doors onto a bounded stack and tries them one by
// one with randomized walk/open/unlock/smash/enter/close actions until it
// gets inside or runs out of doors.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/behavetree/behave"
	"github.com/behavetree/behave/container"
)

var (
	styleOK     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleBad    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleHeader = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
)

type door struct {
	number int
}

// dataContext is the caller-owned state the leaf nodes read and write;
// the tree engine itself never touches it.
type dataContext struct {
	doors       *container.Stack[*door]
	currentDoor *door
	usedDoor    *door
}

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	numDoors := flag.Int("doors", 5, "number of doors in the building")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
	delay := flag.Duration("delay", 500*time.Millisecond, "time each door action takes")
	poll := flag.Duration("poll", 10*time.Millisecond, "async poll interval")
	stamina := flag.Int("stamina", 100, "stamina budget; each attempt costs some")
	flag.Parse()

	if *numDoors < 1 {
		return fmt.Errorf("doors must be at least 1, got %d", *numDoors)
	}

	rng := rand.New(rand.NewPCG(*seed, *seed))
	bb := new(behave.Blackboard)
	bb.Set("stamina", *stamina)
	bb.Set("attempts", 0)

	data := &dataContext{doors: container.NewStack[*door](*numDoors)}

	// The building's doors, bottom to top, so door #1 is tried first.
	building := make([]*door, *numDoors)
	for i := range building {
		building[i] = &door{number: *numDoors - i}
	}

	action := func(name string, probability int) *behave.Action {
		return behave.NewAction(name, func() behave.Status {
			time.Sleep(*delay)
			if rng.IntN(100) < probability {
				fmt.Println(styleOK.Render(fmt.Sprintf("  %s succeeded", name)))
				return behave.StatusSuccess
			}
			fmt.Println(styleBad.Render(fmt.Sprintf("  %s failed", name)))
			return behave.StatusFailure
		})
	}

	walkToDoor := behave.NewAction("walk to door", func() behave.Status {
		time.Sleep(*delay)
		bb.Set("attempts", bb.Get("attempts").(int)+1)
		bb.Set("stamina", bb.Get("stamina").(int)-15)
		fmt.Println(styleHeader.Render(fmt.Sprintf("Trying door #%d", data.currentDoor.number)))
		return behave.StatusSuccess
	})
	openDoor := action("open door", 12)
	unlockDoor := action("unlock door", 25)
	smashDoor := action("smash door", 60)
	walkThroughDoor := action("walk through door", 85)
	closeDoor := action("close door", 100)

	// Tree shape, from the root down:
	//
	//   sequence(collect doors, succeed(until-fail(try one door)), invert(no door remembered))
	//   try one door = sequence(pop next door, invert(async(go through door)))
	//   go through door = sequence(has stamina, walk, select(open, unlock, smash), enter, succeed(close), remember)
	tree := behave.NewTree()
	enterBuilding := behave.NewSequence("enter building")
	tryDoor := behave.NewSequence("try one door")
	goThroughDoor := behave.NewSequence("go through door")
	getDoorOpen := behave.NewSelect("get door open")
	doorLoop := behave.NewSucceed("door loop")
	untilFail := behave.NewRepeatUntil("until no door works", behave.StatusFailure)
	gotIn := behave.NewInvert("got in")
	attemptFailed := behave.NewInvert("attempt failed")
	closeAnyway := behave.NewSucceed("close door anyway")
	attempt := behave.NewAsync("attempt door", *poll)

	collectDoors := behave.NewReplaceStack("collect doors", data.doors, building, nil)
	popDoor := behave.NewPopFromStack("pop next door", &data.currentDoor, data.doors)
	rememberDoor := behave.NewSetVariable("remember door", &data.usedDoor, &data.currentDoor)
	noDoorRemembered := behave.NewIsUnset("no door remembered", &data.usedDoor)
	hasStamina := behave.NewCondition("has stamina", "stamina > 0", bb, behave.DontSkip())

	tree.SetRootChild(enterBuilding)
	enterBuilding.AddChildren(collectDoors, doorLoop, gotIn)
	doorLoop.SetChild(untilFail)
	gotIn.SetChild(noDoorRemembered)
	untilFail.SetChild(tryDoor)
	tryDoor.AddChildren(popDoor, attemptFailed)
	attemptFailed.SetChild(attempt)
	attempt.SetChild(goThroughDoor)
	goThroughDoor.AddChildren(hasStamina, walkToDoor, getDoorOpen, walkThroughDoor, closeAnyway, rememberDoor)
	getDoorOpen.AddChildren(openDoor, unlockDoor, smashDoor)
	closeAnyway.SetChild(closeDoor)

	fmt.Println(styleHeader.Render(fmt.Sprintf("A building with %d doors (seed %d)", *numDoors, *seed)))

	result := tree.Run()

	attempts := bb.Get("attempts").(int)
	fmt.Printf("\n%d attempt(s), %d stamina left\n", attempts, bb.Get("stamina").(int))
	switch result {
	case behave.StatusSuccess:
		fmt.Println(styleOK.Render(fmt.Sprintf("Congratulations! You made it in through door #%d.", data.usedDoor.number)))
	case behave.StatusFailure:
		fmt.Println(styleBad.Render("Sorry. You have failed to enter the building."))
	default:
		return fmt.Errorf("tree finished with unexpected status %v", result)
	}
	return nil
}
