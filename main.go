package main

import (
	"context"
	"fmt"
	"log"

	"github.com/mkorchagin/checkoutflow/internal/domain"
	"github.com/mkorchagin/checkoutflow/internal/factory"
	"github.com/mkorchagin/checkoutflow/internal/logger"
	"github.com/mkorchagin/checkoutflow/internal/payment"
	"github.com/mkorchagin/checkoutflow/internal/workflow"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

func main() {
	ctx := context.Background()

	zl, err := logger.New(logger.DefaultConfig())
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	family, err := domain.ToProductFamily("digital")
	if err != nil {
		log.Fatal(err)
	}

	shop, err := factory.NewForFamily(family, zl)
	if err != nil {
		log.Fatal(err)
	}

	order, err := shop.CreateOrder()
	if err != nil {
		log.Fatal(err)
	}

	ebook, err := shop.CreateDigitalProduct("Go in Practice, e-book", usd("29.99"),
		"https://downloads.example.com/go-in-practice.epub")
	if err != nil {
		log.Fatal(err)
	}

	course, err := shop.CreateDigitalProduct("Distributed Systems video course", usd("199.99"),
		"https://downloads.example.com/dist-sys-course")
	if err != nil {
		log.Fatal(err)
	}

	for _, p := range []domain.Product{ebook, course} {
		if err := order.AddItem(p); err != nil {
			log.Fatal(err)
		}
		fmt.Println(p.Display())
	}

	fmt.Println(order.DisplayDetails())

	gateway, err := payment.NewGateway(payment.NewLegacyProcessor(), zl)
	if err != nil {
		log.Fatal(err)
	}

	processor, err := workflow.NewOrderProcessor(zl)
	if err != nil {
		log.Fatal(err)
	}

	payments, err := workflow.NewPaymentSystem(gateway, zl)
	if err != nil {
		log.Fatal(err)
	}

	invoker, err := workflow.NewInvoker(zl)
	if err != nil {
		log.Fatal(err)
	}

	card := domain.Card{
		Number: "4111 1111 1111 1111",
		Expiry: "12/25",
		CVV:    "123",
	}

	placeCmd, err := workflow.NewPlaceOrderCommand(processor, order)
	if err != nil {
		log.Fatal(err)
	}

	payCmd, err := workflow.NewProcessPaymentCommand(payments, order, card)
	if err != nil {
		log.Fatal(err)
	}

	if err := invoker.ExecuteCommand(ctx, placeCmd); err != nil {
		log.Fatal(err)
	}
	if err := invoker.ExecuteCommand(ctx, payCmd); err != nil {
		log.Fatal(err)
	}

	fmt.Println(order.DisplayDetails())

	// change of heart: roll the whole checkout back
	_ = invoker.UndoLastCommand(ctx) // payment rollback, refund unsupported is logged
	_ = invoker.UndoLastCommand(ctx) // order cancelled
	_ = invoker.UndoLastCommand(ctx) // empty history, reported only

	fmt.Println(order.DisplayDetails())
}

func usd(amount string) domain.Money {
	return domain.Money{
		Amount:   decimal.RequireFromString(amount),
		Currency: currency.USD,
	}
}
