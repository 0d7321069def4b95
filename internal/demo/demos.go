package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/shapelab/shapelab/internal/dom"
	"github.com/shapelab/shapelab/internal/errbag"
	"github.com/shapelab/shapelab/internal/fauna"
	"github.com/shapelab/shapelab/internal/fleet"
	"github.com/shapelab/shapelab/internal/option"
	"github.com/shapelab/shapelab/internal/roster"
	"github.com/shapelab/shapelab/internal/shape"
)

// registry lists the built-in demos in presentation order.
var registry = []Demo{
	{
		Name:        "combined-record",
		Description: "One record satisfying two field sets simultaneously",
		Run:         runCombinedRecord,
	},
	{
		Name:        "employee-info",
		Description: "Per-field structural presence checks without a discriminator",
		Run:         runEmployeeInfo,
	},
	{
		Name:        "move-animal",
		Description: "Tagged-union dispatch on a closed discriminator",
		Run:         runMoveAnimal,
	},
	{
		Name:        "use-vehicle",
		Description: "Capability-gated dispatch on runtime shape",
		Run:         runUseVehicle,
	},
	{
		Name:        "input-element",
		Description: "Asserted and guarded casts against the element store",
		Run:         runInputElement,
	},
	{
		Name:        "error-bag",
		Description: "Open-keyed mapping with total lookups",
		Run:         runErrorBag,
	},
	{
		Name:        "overload-add",
		Description: "Shape-directed overload resolution for add",
		Run:         runOverloadAdd,
	},
	{
		Name:        "optional-access",
		Description: "Chained optional access and the two fallback disciplines",
		Run:         runOptionalAccess,
	},
}

func mustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(fmt.Sprintf("demo: bad fixture date %q: %v", s, err))
	}
	return d
}

func runCombinedRecord(_ context.Context, rec *Recorder) error {
	e := roster.ElevatedEmployee{
		Name:       "Max",
		Privileges: []string{"create-server"},
		StartDate:  mustDate("2020-01-01"),
	}

	// The combined record answers for both source shapes at once.
	roster.Describe(e, func(line string) { rec.Printf("%s", line) })
	return nil
}

func runEmployeeInfo(_ context.Context, rec *Recorder) error {
	emit := func(line string) { rec.Printf("%s", line) }

	// Privileges present, start date absent.
	roster.Describe(roster.Admin{
		Name:       "Max",
		Privileges: []string{"create-server"},
	}, emit)

	// Start date present, privileges absent.
	roster.Describe(roster.Contractor{
		Name:      "Manu",
		StartDate: mustDate("2021-06-15"),
	}, emit)

	return nil
}

func runMoveAnimal(_ context.Context, rec *Recorder) error {
	bird, err := fauna.New(fauna.KindBird, 10)
	if err != nil {
		return err
	}
	horse, err := fauna.New(fauna.KindHorse, 45)
	if err != nil {
		return err
	}

	rec.Printf("%s", fauna.Move(bird))
	rec.Printf("%s", fauna.Move(horse))
	return nil
}

func runUseVehicle(_ context.Context, rec *Recorder) error {
	emit := func(line string) { rec.Printf("%s", line) }

	fleet.Use(fleet.Car{}, 1000, emit)
	fleet.Use(fleet.Truck{}, 1000, emit)
	return nil
}

func runInputElement(ctx context.Context, rec *Recorder) error {
	// Fresh in-memory store per run keeps the demo idempotent.
	st, err := dom.Open(":memory:")
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Put(ctx, dom.Element{ID: "user-input", Tag: dom.TagInput}); err != nil {
		return err
	}

	// Unchecked assertion: the caller vouches that user-input exists and
	// is input-shaped. A wrong vouch would fail fast here.
	input, err := st.MustInput(ctx, "user-input")
	if err != nil {
		return err
	}
	if err := input.SetValue(ctx, "Hi there!"); err != nil {
		return err
	}
	rec.Printf("Input value set to: %s", input.Value())

	// Guarded path: absence is excluded before the shape assertion, so
	// this cannot fail - the write is simply skipped.
	if err := st.WithInput(ctx, "missing-input", func(in *dom.InputElement) error {
		return in.SetValue(ctx, "never written")
	}); err != nil {
		return err
	}
	rec.Printf("Missing element ignored")

	return nil
}

func runErrorBag(_ context.Context, rec *Recorder) error {
	bag := errbag.New()
	bag.Set("email", "Not a valid email!")
	bag.Set("username", "Must start with a capital character!")

	for _, field := range bag.Keys() {
		msg, _ := bag.Get(field)
		rec.Printf("%s: %s", field, msg)
	}
	return nil
}

func runOverloadAdd(_ context.Context, rec *Recorder) error {
	rec.Printf("Sum: %d", shape.Sum(1, 5))

	// The static text/text pairing yields Text, so Split needs no
	// narrowing.
	full := shape.Concat("Geo", " Sauer")
	rec.Printf("Concat: %s", full)
	rec.Printf("First name: %s", full.Split(" ")[0])

	mixed := shape.Add(shape.Text("result is "), shape.Num(1))
	rec.Printf("Mixed: %s", mixed.(shape.Text))
	return nil
}

type demoJob struct {
	title string
}

type demoUser struct {
	job option.Option[demoJob]
}

func runOptionalAccess(_ context.Context, rec *Recorder) error {
	jobTitle := func(u option.Option[demoUser]) option.Option[string] {
		return option.Map(
			option.AndThen(u, func(u demoUser) option.Option[demoJob] { return u.job }),
			func(j demoJob) string { return j.title },
		)
	}

	// Every link present: the chain reaches the title.
	withJob := option.Some(demoUser{job: option.Some(demoJob{title: "CEO"})})
	if title, ok := jobTitle(withJob).Get(); ok {
		rec.Printf("Title: %s", title)
	}

	// Absent middle link: the chain short-circuits without failing.
	withoutJob := option.Some(demoUser{job: option.None[demoJob]()})
	if _, ok := jobTitle(withoutJob).Get(); !ok {
		rec.Printf("No job data")
	}

	// Absence-specific fallback: only the absence marker substitutes.
	rec.Printf("Stored: [%s]", option.None[string]().OrElse("DEFAULT"))
	rec.Printf("Stored: [%s]", option.Some("").OrElse("DEFAULT"))

	// Truthiness-style fallback diverges on the same empty input.
	rec.Printf("Falsy fallback: [%s]", option.OrFalsy(option.Some(""), "DEFAULT"))

	return nil
}
