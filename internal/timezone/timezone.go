package timezone

import "time"

// Base única de tempo da aplicação. Toda a aritmética de agenda acontece
// numa só localização, definida uma vez no boot; conversão para o fuso do
// cliente é problema da borda de apresentação.
var appLocation = time.UTC

func Init(name string) {
	if name == "" {
		return
	}
	if loc, err := time.LoadLocation(name); err == nil {
		appLocation = loc
	}
}

func Location() *time.Location {
	return appLocation
}

func Now() time.Time {
	return time.Now().In(appLocation)
}
