package flash_test

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/flashkit/pkg/flash"
)

func ExampleBag() {
	ctx := context.Background()
	store := flash.NewMemoryStore()

	// Handling the form submission: accumulate and flash.
	bag := flash.NewBag(ctx, "default",
		flash.WithStore(store),
		flash.WithDefaultFormat(":message"),
	)
	bag.Success(ctx, "Profile saved.").
		Error(ctx, "Avatar upload failed.")

	// Flashable messages are not shown within the same cycle.
	fmt.Printf("now: %q\n", bag.Show("", ""))

	// Next request: the session store advanced one cycle and a fresh bag
	// reloads the flashed messages as ready to render.
	store.Rotate()
	next := flash.NewBag(ctx, "default", flash.WithStore(store))
	fmt.Printf("after redirect: %q\n", next.Show("", ""))

	// Output:
	// now: ""
	// after redirect: "Profile saved.Avatar upload failed."
}

func ExampleNotifier() {
	ctx := context.Background()
	cfg := flash.DefaultConfig()
	cfg.DefaultFormat = "[:type] :message"

	n := flash.NewNotifier(cfg)

	// Messages for the current cycle render immediately.
	n.Container(ctx, "", func(b *flash.Bag) {
		b.Add(ctx, flash.TypeInfo, "Maintenance tonight.", flash.WithFlashable(false))
	})

	fmt.Println(n.Show(ctx, "", "", ""))
	// Output: [info] Maintenance tonight.
}

func ExampleFormatMap() {
	formats := flash.FormatMap{
		"admin":               {flash.TypeError: `<strong>:message</strong>`},
		flash.FormatsCatchAll: {flash.TypeError: `:message`},
	}

	ctx := context.Background()
	n := flash.NewNotifier(flash.DefaultConfig(), flash.WithFormats(formats))

	n.Container(ctx, "admin").Add(ctx, flash.TypeError, "Access denied.", flash.WithFlashable(false))
	fmt.Println(n.Show(ctx, "admin", flash.TypeError, ""))
	// Output: <strong>Access denied.</strong>
}
