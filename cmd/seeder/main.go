package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mycostore/poradnyk/core"
	"github.com/mycostore/poradnyk/storage/badger"
)

// A small demo catalog in the shape a real supplier feed produces.
var products = []*core.Product{
	{
		Name:        "Кордицепс мілітаріс 60 капсул",
		Category:    "Гриби",
		Description: "Екстракт кордицепсу для природної енергії та витривалості.",
		Usage:       "По 2 капсули вранці під час їжі",
		Composition: "Екстракт Cordyceps militaris 500 мг",
		Price:       540,
		Unit:        "шт",
	},
	{
		Name:        "Рейші екстракт 100 г",
		Category:    "Гриби",
		Description: "Порошок рейші для спокійного сну та відновлення.",
		Usage:       "Половина чайної ложки ввечері",
		Composition: "Екстракт Ganoderma lucidum",
		Price:       480,
		Unit:        "шт",
	},
	{
		Name:        "Їжовик гребінчастий 120 капсул",
		Category:    "Гриби",
		Description: "Підтримка памʼяті, концентрації та роботи мозку.",
		Usage:       "По 2 капсули двічі на день",
		Composition: "Екстракт Hericium erinaceus 400 мг",
		Price:       620,
		Unit:        "шт",
	},
	{
		Name:        "Чага сибірська мелена 150 г",
		Category:    "Гриби",
		Description: "Чага для імунітету та загального тонусу.",
		Usage:       "Заварювати 1 чайну ложку на склянку",
		Composition: "Мелений березовий гриб Inonotus obliquus",
		Price:       300,
		Unit:        "шт",
	},
	{
		Name:        "Мухомор червоний сушений 50 г",
		Category:    "Гриби",
		Description: "Сушені шапинки мухомора для мікродозингу, від стресу та для сну.",
		Usage:       "Згідно з протоколом мікродозингу",
		Composition: "Amanita muscaria, шапинки",
		Price:       450,
		Unit:        "пакет",
	},
	{
		Name:        "Шиітаке капсули 90 шт",
		Category:    "Гриби",
		Description: "Шиітаке для підтримки імунної системи.",
		Usage:       "По 2 капсули на день",
		Composition: "Екстракт Lentinula edodes",
		Price:       350,
		Unit:        "шт",
	},
	{
		Name:        "Агарик бразильський 60 капсул",
		Category:    "Гриби",
		Description: "Агарик для імунітету.",
		Usage:       "По 1 капсулі двічі на день",
		Composition: "Екстракт Agaricus blazei",
		Price:       390,
		Unit:        "шт",
	},
	{
		Name:        "Женьшень корінь настоянка 100 мл",
		Category:    "Настоянки",
		Description: "Настоянка женьшеню для бадьорості та витривалості.",
		Usage:       "По 20 крапель вранці",
		Composition: "Корінь Panax ginseng, спирт",
		Price:       260,
		Unit:        "флакон",
	},
	{
		Name:        "Вітамін D3 2000 МО",
		Category:    "Вітаміни",
		Description: "Вітамін D3 для імунітету та здоровʼя кісток.",
		Usage:       "По 1 капсулі на день",
		Composition: "Холекальциферол 2000 МО",
		Price:       210,
		Unit:        "шт",
	},
	{
		Name:        "Магній бісгліцинат 90 капсул",
		Category:    "Вітаміни",
		Description: "Магній від нервового напруження та для глибокого сну.",
		Usage:       "По 2 капсули ввечері",
		Composition: "Магнію бісгліцинат 200 мг",
		Price:       320,
		Unit:        "шт",
	},
}

func main() {
	dbPath := flag.String("db", "./catalog_db", "Path to BadgerDB database directory")
	flag.Parse()

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))

	backend, err := badger.OpenBackend(*dbPath, false)
	if err != nil {
		panic(err)
	}
	defer backend.Close()

	repo, err := badger.NewProductRepository(backend)
	if err != nil {
		panic(err)
	}
	defer repo.Close()

	added, err := repo.PutProducts(context.Background(), products...)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Seeded %d products into %s\n", len(added), *dbPath)
	for _, p := range added {
		fmt.Printf("  %d: %s (%0.2f грн)\n", p.Id, p.Name, p.Price)
	}
}
