package domain

import "time"

// GenerateRomanianHolidays builds the legal public holidays of Romania for
// the given year, used to bulk-seed the holiday registry at onboarding or
// at the start of a new year.
//
// Fixed-date holidays are generated as recurring records; the movable
// feasts derived from Orthodox Easter are year-specific and non-recurring,
// so each year has to be seeded separately for them.
func GenerateRomanianHolidays(year int) []*Holiday {
	fixed := func(month time.Month, day int, name string, orthodox bool) *Holiday {
		return &Holiday{
			Name:        name,
			Date:        time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
			IsRecurring: true,
			IsOrthodox:  orthodox,
		}
	}

	easter := OrthodoxEaster(year)
	movable := func(offsetDays int, name string) *Holiday {
		return &Holiday{
			Name:        name,
			Date:        easter.AddDate(0, 0, offsetDays),
			IsRecurring: false,
			IsOrthodox:  true,
		}
	}

	return []*Holiday{
		fixed(time.January, 1, "Anul Nou", false),
		fixed(time.January, 2, "A doua zi de Anul Nou", false),
		fixed(time.January, 6, "Boboteaza", true),
		fixed(time.January, 7, "Sfântul Ioan Botezătorul", true),
		fixed(time.January, 24, "Ziua Unirii Principatelor Române", false),
		movable(-2, "Vinerea Mare"),
		movable(0, "Paștele ortodox"),
		movable(1, "A doua zi de Paște"),
		fixed(time.May, 1, "Ziua Muncii", false),
		fixed(time.June, 1, "Ziua Copilului", false),
		movable(49, "Rusaliile"),
		movable(50, "A doua zi de Rusalii"),
		fixed(time.August, 15, "Adormirea Maicii Domnului", true),
		fixed(time.November, 30, "Sfântul Andrei", true),
		fixed(time.December, 1, "Ziua Națională a României", false),
		fixed(time.December, 25, "Crăciunul", true),
		fixed(time.December, 26, "A doua zi de Crăciun", true),
	}
}

// OrthodoxEaster computes the Orthodox Easter Sunday date (Gregorian
// calendar) for the given year using the Meeus Julian algorithm with the
// Julian-to-Gregorian offset. Valid for years 1900-2099, which covers any
// year a station can realistically schedule.
func OrthodoxEaster(year int) time.Time {
	a := year % 4
	b := year % 7
	c := year % 19
	d := (19*c + 15) % 30
	e := (2*a + 4*b - d + 34) % 7

	month := (d + e + 114) / 31
	day := (d+e+114)%31 + 1

	// Julian calendar date; add 13 days for the Gregorian equivalent.
	julian := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return julian.AddDate(0, 0, 13)
}
