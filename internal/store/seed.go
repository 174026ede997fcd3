package store

import "github.com/myhalal/directory/internal/model"

// SeedPlaces is the initial catalog loaded on first start, when the places
// table is empty. Both text representations start out identical; the
// channel copy picks up its reference-number line when the entry is next
// published.
var SeedPlaces = []model.Place{
	{
		Name: "CHAIHANA-AMIR",
		Lat:  38.61700400,
		Lng:  -121.53797100,
		TextUser: `🍽️ <b>CHAIHANA-AMIR</b>
📍 <a href="https://www.google.com/maps?q=38.61700400 ,-121.53797100">Sacramento, CA</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 2–3 ч до доставки
⏰ 24/7
🚘 Доставка есть
📞 +19167506977  +19169405677
📋 <a href="https://t.me/myhalalmenu/8 ">Меню</a>
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>CHAIHANA-AMIR</b>
📍 <a href="https://www.google.com/maps?q=38.61700400 ,-121.53797100">Sacramento, CA</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 2–3 ч до доставки
⏰ 24/7
🚘 Доставка есть
📞 +19167506977  +19169405677
📋 <a href="https://t.me/myhalalmenu/8 ">Меню</a>
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "XADICHAI-KUBRO",
		Lat:  38.61708200,
		Lng:  -121.53778900,
		TextUser: `🍽️ <b>XADICHAI-KUBRO</b>
📍 <a href="https://www.google.com/maps?q=38.61708200 ,-121.53778900">Sacramento, CA</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 6–7 ч до доставки
⏰ 08:00 – 19:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/9 ">Меню</a> (в комментариях)
📞 +12797901986
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>XADICHAI-KUBRO</b>
📍 <a href="https://www.google.com/maps?q=38.61708200 ,-121.53778900">Sacramento, CA</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 6–7 ч до доставки
⏰ 08:00 – 19:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/9 ">Меню</a> (в комментариях)
📞 +12797901986
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "UMAR-UZBEK-NATIONAL-FOOD",
		Lat:  38.61700400,
		Lng:  -121.53797100,
		TextUser: `🍽️ <b>UMAR UZBEK NATIONAL FOOD</b>
📍 <a href="https://www.google.com/maps?q=38.61700400 ,-121.53797100">Sacramento, CA</a>
🏠 Домашняя кухня
🧾 Заказы за 4–5 ч до доставки
⏰ 10:00 – 20:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/10 ">Меню</a> (в комментариях)
📞 +19165333778
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>UMAR UZBEK NATIONAL FOOD</b>
📍 <a href="https://www.google.com/maps?q=38.61700400 ,-121.53797100">Sacramento, CA</a>
🏠 Домашняя кухня
🧾 Заказы за 4–5 ч до доставки
⏰ 10:00 – 20:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/10 ">Меню</a> (в комментариях)
📞 +19165333778
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "RANO-OPA-KITCHEN",
		Lat:  37.80681200,
		Lng:  -122.41256100,
		TextUser: `🍽️ <b>RANO OPA KITCHEN – HALOL MILLIY UZBEK TAOMLARI</b>
📍 <a href="https://www.google.com/maps?q=37.80681200 ,-122.41256100">San Francisco, CA</a>
🏠 Домашняя кухня
🧾 Заказы за 3–4 ч до доставки
⏰ 10:00 – 22:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/11 ">Меню</a> (в комментариях)
📞 +15107782614
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>RANO OPA KITCHEN – HALOL MILLIY UZBEK TAOMLARI</b>
📍 <a href="https://www.google.com/maps?q=37.80681200 ,-122.41256100">San Francisco, CA</a>
🏠 Домашняя кухня
🧾 Заказы за 3–4 ч до доставки
⏰ 10:00 – 22:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/11 ">Меню</a> (в комментариях)
📞 +15107782614
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "DENVER-HALAL-FOOD",
		Lat:  39.79106000,
		Lng:  -104.90467400,
		TextUser: `🍽️ <b>DENVER HALAL FOOD</b>
📍 <a href="https://www.google.com/maps?q=39.79106000 ,-104.90467400">Denver, CO</a>
🏠 Домашняя кухня
🧾 Заказы за 3–4 ч до доставки
⏰ 09:00 – 00:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/12 ">Меню</a> (в комментариях)
📞 +17207564155
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>DENVER HALAL FOOD</b>
📍 <a href="https://www.google.com/maps?q=39.79106000 ,-104.90467400">Denver, CO</a>
🏠 Домашняя кухня
🧾 Заказы за 3–4 ч до доставки
⏰ 09:00 – 00:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/12 ">Меню</a> (в комментариях)
📞 +17207564155
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "TRUCKERS-HALAL-FOOD",
		Lat:  39.73438200,
		Lng:  -104.84645600,
		TextUser: `🍽️ <b>TRUCKERS HALAL FOOD</b>
📍 <a href="https://www.google.com/maps?q=39.73438200 ,-104.84645600">Denver, CO</a>
🏠 Домашняя кухня
🧾 Заказы за 3–4 ч до доставки
⏰ 08:00 – 00:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/13 ">Меню</a> (в комментариях)
📞 +17209935823
📱 Telegram: @MYHALAL_FOOD, @Denverfood`,
		TextChannel: `🍽️ <b>TRUCKERS HALAL FOOD</b>
📍 <a href="https://www.google.com/maps?q=39.73438200 ,-104.84645600">Denver, CO</a>
🏠 Домашняя кухня
🧾 Заказы за 3–4 ч до доставки
⏰ 08:00 – 00:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/13 ">Меню</a> (в комментариях)
📞 +17209935823
📱 Telegram: @MYHALAL_FOOD, @Denverfood`,
	},
	{
		Name: "BAUYRSAQ-EXPRESS",
		Lat:  47.24476600,
		Lng:  -122.38548700,
		TextUser: `🍽️ <b>BAUYRSAQ EXPRESS – Uzbek · Kazakh · Kirgiz kitchen</b>
📍 <a href="https://www.google.com/maps?q=47.24476600 ,-122.38548700">Tacoma, WA</a>
🏠 Домашняя кухня
🧾 Заказы за 2–3 ч до доставки
⏰ 24/7
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/14 ">Меню</a> (в комментариях)
📞 +14257577206
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>BAUYRSAQ EXPRESS – Uzbek · Kazakh · Kirgiz kitchen</b>
📍 <a href="https://www.google.com/maps?q=47.24476600 ,-122.38548700">Tacoma, WA</a>
🏠 Домашняя кухня
🧾 Заказы за 2–3 ч до доставки
⏰ 24/7
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/14 ">Меню</a> (в комментариях)
📞 +14257577206
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "ASIA-HALAL-FOOD",
		Lat:  47.24476600,
		Lng:  -122.38548700,
		TextUser: `🍽️ <b>ASIA HALAL FOOD</b>
📍 <a href="https://www.google.com/maps?q=47.24476600 ,-122.38548700">Tacoma, WA</a>
🏠 Домашняя кухня
🧾 Продукты готовы, можно купить сразу
⏰ 24/7
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/15 ">Меню</a> (в комментариях)
📞 +18782294148  +18782294149
📱 Telegram: @MYHALAL_FOOD, @AsiaHalalFood`,
		TextChannel: `🍽️ <b>ASIA HALAL FOOD</b>
📍 <a href="https://www.google.com/maps?q=47.24476600 ,-122.38548700">Tacoma, WA</a>
🏠 Домашняя кухня
🧾 Продукты готовы, можно купить сразу
⏰ 24/7
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/15 ">Меню</a> (в комментариях)
📞 +18782294148  +18782294149
📱 Telegram: @MYHALAL_FOOD, @AsiaHalalFood`,
	},
	{
		Name: "UZBEK-HALOL-FOOD",
		Lat:  47.24476600,
		Lng:  -122.38548700,
		TextUser: `🍽️ <b>UZBEK HALOL FOOD</b>
📍 <a href="https://www.google.com/maps?q=47.24476600 ,-122.38548700">Tacoma, WA</a>
🏠 Домашняя кухня
🧾 Продукты готовы, можно купить сразу
⏰ 08:00 – 22:00
🚘 Доставка бесплатно
📋 <a href="https://t.me/myhalalmenu/16 ">Меню</a> (в комментариях)
📞 +13609306392  +12534485190
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>UZBEK HALOL FOOD</b>
📍 <a href="https://www.google.com/maps?q=47.24476600 ,-122.38548700">Tacoma, WA</a>
🏠 Домашняя кухня
🧾 Продукты готовы, можно купить сразу
⏰ 08:00 – 22:00
🚘 Доставка бесплатно
📋 <a href="https://t.me/myhalalmenu/16 ">Меню</a> (в комментариях)
📞 +13609306392  +12534485190
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "AMIN-FOOD",
		Lat:  47.24476600,
		Lng:  -122.38548700,
		TextUser: `🍽️ <b>AMIN FOOD</b>
📍 <a href="https://www.google.com/maps?q=47.24476600 ,-122.38548700">Tacoma, WA</a>
🏠 Домашняя кухня
🧾 Заказы за 3–4 ч до доставки
⏰ 08:00 – 22:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/18 ">Меню</a> (в комментариях)
📞 +19167380322
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>AMIN FOOD</b>
📍 <a href="https://www.google.com/maps?q=47.24476600 ,-122.38548700">Tacoma, WA</a>
🏠 Домашняя кухня
🧾 Заказы за 3–4 ч до доставки
⏰ 08:00 – 22:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/18 ">Меню</a> (в комментариях)
📞 +19167380322
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "CARAVAN-RESTAURANT-2",
		Lat:  47.66120600,
		Lng:  -122.32378600,
		TextUser: `🍽️ <b>CARAVAN RESTAURANT – 2</b>
📍 <a href="https://www.google.com/maps?q=47.66120600 ,-122.32378600">Seattle, WA</a>
🏠 Ресторан
🗺 Адреса:
— <a href="https://maps.app.goo.gl/RiKVT3aQoJbWZ3xg8 ">405 NE 45th St, Seattle, WA 98105</a>
— <a href="https://maps.app.goo.gl/LrTdvgjfGZzxe2mr6 ">7801 Detroit Ave SW, Seattle, WA 98106</a>
— <a href="https://maps.app.goo.gl/zs2dnzLgCF6h1SoC8 ">3215 4th Ave S, Seattle, WA</a>
🧾 Продукты готовы, можно купить сразу
⏰ 11:00 – 23:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/19 ">Меню</a> (в комментариях)
📞 +12065457499
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>CARAVAN RESTAURANT – 2</b>
📍 <a href="https://www.google.com/maps?q=47.66120600 ,-122.32378600">Seattle, WA</a>
🏠 Ресторан
🗺 Адреса:
— <a href="https://maps.app.goo.gl/RiKVT3aQoJbWZ3xg8 ">405 NE 45th St, Seattle, WA 98105</a>
— <a href="https://maps.app.goo.gl/LrTdvgjfGZzxe2mr6 ">7801 Detroit Ave SW, Seattle, WA 98106</a>
— <a href="https://maps.app.goo.gl/zs2dnzLgCF6h1SoC8 ">3215 4th Ave S, Seattle, WA</a>
🧾 Продукты готовы, можно купить сразу
⏰ 11:00 – 23:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/19 ">Меню</a> (в комментариях)
📞 +12065457499
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "SADIYA-OSHXONASI",
		Lat:  39.27019000,
		Lng:  -84.44163700,
		TextUser: `🍽️ <b>SADIYA OSHXONASI VA CAKE LAB</b>
📍 <a href="https://www.google.com/maps?q=39.27019000 ,-84.44163700">Cincinnati, OH</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 3–4 ч до доставки
⏰ 09:00 – 22:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/20 ">Меню</a> (в комментариях)
📞 +15134449371
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>SADIYA OSHXONASI VA CAKE LAB</b>
📍 <a href="https://www.google.com/maps?q=39.27019000 ,-84.44163700">Cincinnati, OH</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 3–4 ч до доставки
⏰ 09:00 – 22:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/20 ">Меню</a> (в комментариях)
📞 +15134449371
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "DELICIOUS-FOODS",
		Lat:  39.26986100,
		Lng:  -84.43900900,
		TextUser: `🍽️ <b>DELICIOUS FOODS</b>
📍 <a href="https://www.google.com/maps?q=39.26986100 ,-84.43900900">Cincinnati, OH</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 4 ч до доставки
⏰ 09:00 – 20:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/21 ">Меню</a> (в комментариях)
📞 +15134046762
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>DELICIOUS FOODS</b>
📍 <a href="https://www.google.com/maps?q=39.26986100 ,-84.43900900">Cincinnati, OH</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 4 ч до доставки
⏰ 09:00 – 20:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/21 ">Меню</a> (в комментариях)
📞 +15134046762
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "ROBIYA-BAKERY",
		Lat:  39.26866500,
		Lng:  -84.43942300,
		TextUser: `🍽️ <b>ROBIYA BAKERY</b>
📍 <a href="https://www.google.com/maps?q=39.26866500 ,-84.43942300">Cincinnati, OH</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 4–5 ч до доставки
⏰ 09:00 – 21:00
🚘 Доставка по Dayton и Hebron
📋 <a href="https://t.me/myhalalmenu/22 ">Меню</a> (в комментариях)
📞 +15132249300
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>ROBIYA BAKERY</b>
📍 <a href="https://www.google.com/maps?q=39.26866500 ,-84.43942300">Cincinnati, OH</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 4–5 ч до доставки
⏰ 09:00 – 21:00
🚘 Доставка по Dayton и Hebron
📋 <a href="https://t.me/myhalalmenu/22 ">Меню</a> (в комментариях)
📞 +15132249300
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "CHAYHANA-1",
		Lat:  39.31210400,
		Lng:  -84.37738100,
		TextUser: `🍽️ <b>CHAYHANA №1</b>
📍 <a href="https://www.google.com/maps?q=39.31210400 ,-84.37738100">Cincinnati, OH</a>
🍴 Ресторан
🧾 Блюда готовы, можно забрать
⏰ 10:00 – 22:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/23 ">Меню</a> (в комментариях)
📞 +15137550596
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>CHAYHANA №1</b>
📍 <a href="https://www.google.com/maps?q=39.31210400 ,-84.37738100">Cincinnati, OH</a>
🍴 Ресторан
🧾 Блюда готовы, можно забрать
⏰ 10:00 – 22:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/23 ">Меню</a> (в комментариях)
📞 +15137550596
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "SHEF-MOM",
		Lat:  39.38454100,
		Lng:  -84.34233300,
		TextUser: `🍽️ <b>SHEF MOM – CAKE – SUSHI</b>
📍 <a href="https://www.google.com/maps?q=39.38454100 ,-84.34233300">Cincinnati, OH</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 5 ч до доставки
⏰ 10:00 – 22:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/24 ">Меню</a> (в комментариях)
📞 +14704000770
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>SHEF MOM – CAKE – SUSHI</b>
📍 <a href="https://www.google.com/maps?q=39.38454100 ,-84.34233300">Cincinnati, OH</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 5 ч до доставки
⏰ 10:00 – 22:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/24 ">Меню</a> (в комментариях)
📞 +14704000770
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "TAJIKSKO-UZBEKSKAYA-KUHNYA",
		Lat:  41.28132000,
		Lng:  -96.21969700,
		TextUser: `🍽️ <b>Таджикско-узбекская Национальная кухня</b>
📍 <a href="https://www.google.com/maps?q=41.28132000 ,-96.21969700">Omaha, NE</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 2–3 ч до доставки
⏰ 24/7
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/25 ">Меню</a> (в комментариях)
📞 +14026168772
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>Таджикско-узбекская Национальная кухня</b>
📍 <a href="https://www.google.com/maps?q=41.28132000 ,-96.21969700">Omaha, NE</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 2–3 ч до доставки
⏰ 24/7
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/25 ">Меню</a> (в комментариях)
📞 +14026168772
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "ZARINA-FOOD",
		Lat:  40.28957100,
		Lng:  -76.88458100,
		TextUser: `🍽️ <b>ZARINA FOOD UYGʻUR OSHXONASI</b>
📍 <a href="https://www.google.com/maps?q=40.28957100 ,-76.88458100">Harrisburg, PA</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 2–3 ч до доставки
⏰ 08:00 – 18:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/26 ">Меню</a> (в комментариях)
📞 +17175626326
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>ZARINA FOOD UYGʻUR OSHXONASI</b>
📍 <a href="https://www.google.com/maps?q=40.28957100 ,-76.88458100">Harrisburg, PA</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 2–3 ч до доставки
⏰ 08:00 – 18:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/26 ">Меню</a> (в комментариях)
📞 +17175626326
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "PIZZA-BARI",
		Lat:  40.44370500,
		Lng:  -79.99612500,
		TextUser: `🍽️ <b>PIZZA BARI</b>
📍 <a href="https://www.google.com/maps?q=40.44370500 ,-79.99612500">Pittsburgh, PA</a>
🏠 Кафе
🧾 Продукты готовы, можно купить сразу
⏰ 10:00 – 02:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/28 ">Меню</a> (в комментариях)
📞 +14124020444  +14126090714
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>PIZZA BARI</b>
📍 <a href="https://www.google.com/maps?q=40.44370500 ,-79.99612500">Pittsburgh, PA</a>
🏠 Кафе
🧾 Продукты готовы, можно купить сразу
⏰ 10:00 – 02:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/28 ">Меню</a> (в комментариях)
📞 +14124020444  +14126090714
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "MUSOJON",
		Lat:  33.55247500,
		Lng:  -112.15317400,
		TextUser: `🍽️ <b>MUSOJON</b>
📍 <a href="https://www.google.com/maps?q=33.55247500 ,-112.15317400">Phoenix, AZ</a>
🏠 Домашняя кухня на вынос
🧾 Продукты готовы, можно купить сразу
⏰ 05:00 – 22:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/29 ">Меню</a> (в комментариях)
📞 +16028201597
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>MUSOJON</b>
📍 <a href="https://www.google.com/maps?q=33.55247500 ,-112.15317400">Phoenix, AZ</a>
🏠 Домашняя кухня на вынос
🧾 Продукты готовы, можно купить сразу
⏰ 05:00 – 22:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/29 ">Меню</a> (в комментариях)
📞 +16028201597
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "ARIZONA-HALAL-FOOD-1",
		Lat:  33.53869100,
		Lng:  -112.18625700,
		TextUser: `🍽️ <b>ARIZONA HALAL FOOD</b>
📍 <a href="https://www.google.com/maps?q=33.53869100 ,-112.18625700">Phoenix, AZ</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 4–5 ч до доставки
⏰ 08:00 – 20:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/30 ">Меню</a> (в комментариях)
📞 +14807891711
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>ARIZONA HALAL FOOD</b>
📍 <a href="https://www.google.com/maps?q=33.53869100 ,-112.18625700">Phoenix, AZ</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 4–5 ч до доставки
⏰ 08:00 – 20:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/30 ">Меню</a> (в комментариях)
📞 +14807891711
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "TOSHKENT-MILLIY-TAOMLARI",
		Lat:  33.49340800,
		Lng:  -112.33416100,
		TextUser: `🍽️ <b>TOSHKENT MILLIY TAOMLARI</b>
📍 <a href="https://www.google.com/maps?q=33.49340800 ,-112.33416100">Phoenix, AZ</a>
🏠 Домашняя кухня на вынос
🧾 Продукты готовы, можно купить сразу
⏰ 07:00 – 21:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/31 ">Меню</a> (в комментариях)
📞 +16232056021  +16023489938
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>TOSHKENT MILLIY TAOMLARI</b>
📍 <a href="https://www.google.com/maps?q=33.49340800 ,-112.33416100">Phoenix, AZ</a>
🏠 Домашняя кухня на вынос
🧾 Продукты готовы, можно купить сразу
⏰ 07:00 – 21:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/31 ">Меню</a> (в комментариях)
📞 +16232056021  +16023489938
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "ALIS-KITCHEN",
		Lat:  33.46092400,
		Lng:  -112.25515400,
		TextUser: `🍽️ <b>ALI'S KITCHEN</b>
📍 <a href="https://www.google.com/maps?q=33.46092400 ,-112.25515400">Phoenix, AZ</a>
🏠 Домашняя кухня на вынос
🧾 Продукты готовы, можно купить сразу
⏰ 09:00 – 00:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/32 ">Меню</a> (в комментариях)
📞 +16026997010
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>ALI'S KITCHEN</b>
📍 <a href="https://www.google.com/maps?q=33.46092400 ,-112.25515400">Phoenix, AZ</a>
🏠 Домашняя кухня на вынос
🧾 Продукты готовы, можно купить сразу
⏰ 09:00 – 00:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/32 ">Меню</a> (в комментариях)
📞 +16026997010
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "UZBEK-HALAL-FOODS-MEMPHIS",
		Lat:  35.04594700,
		Lng:  -90.02337700,
		TextUser: `🍽️ <b>UZBEK HALAL FOODS</b>
📍 <a href="https://maps.app.goo.gl/DxTwbfJaypEZvf647 ">Memphis, TN</a> (Arkansas border)
🏠 Фудтрак
🧾 Продукты готовы, можно купить сразу
⏰ 09:00 – 23:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/33 ">Меню</a> (в комментариях)
📞 +15126693163
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>UZBEK HALAL FOODS</b>
📍 <a href="https://maps.app.goo.gl/DxTwbfJaypEZvf647 ">Memphis, TN</a> (Arkansas border)
🏠 Фудтрак
🧾 Продукты готовы, можно купить сразу
⏰ 09:00 – 23:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/33 ">Меню</a> (в комментариях)
📞 +15126693163
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "MADI-FOOD",
		Lat:  28.03012900,
		Lng:  -82.45883800,
		TextUser: `🍽️ <b>MADI FOOD (Uygʻurcha taomlar)</b>
📍 <a href="https://www.google.com/maps?q=28.03012900 ,-82.45883800">Tampa, FL</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 3–4 ч до доставки
⏰ 10:00 – 22:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/34 ">Меню</a> (в комментариях)
📞 +17178058368
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>MADI FOOD (Uygʻurcha taomlar)</b>
📍 <a href="https://www.google.com/maps?q=28.03012900 ,-82.45883800">Tampa, FL</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 3–4 ч до доставки
⏰ 10:00 – 22:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/34 ">Меню</a> (в комментариях)
📞 +17178058368
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "CHAYHANA-ORLANDO",
		Lat:  28.66596900,
		Lng:  -81.41681300,
		TextUser: `🍽️ <b>CHAYHANA ORLANDO</b>
📍 <a href="https://www.google.com/maps?q=28.66596900 ,-81.41681300">Orlando, FL</a>
🏠 Ресторан
🧾 Продукты готовы, можно купить сразу
⏰ 11:00 – 22:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/35 ">Меню</a> (в комментариях)
📞 +13214220143
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>CHAYHANA ORLANDO</b>
📍 <a href="https://www.google.com/maps?q=28.66596900 ,-81.41681300">Orlando, FL</a>
🏠 Ресторан
🧾 Продукты готовы, можно купить сразу
⏰ 11:00 – 22:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/35 ">Меню</a> (в комментариях)
📞 +13214220143
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "CARAVAN-RESTAURANT-CHICAGO",
		Lat:  41.87811400,
		Lng:  -87.62979800,
		TextUser: `🍽️ <b>CARAVAN RESTAURANT</b>
📍 <a href="https://maps.app.goo.gl/gj72DoxeAVhTFgsy5 ">Chicago, IL</a>
🏠 Ресторан
🧾 Продукты готовы, можно купить сразу
⏰ 10:00 – 22:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/36 ">Меню</a> (в комментариях)
📞 +17733673258
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>CARAVAN RESTAURANT</b>
📍 <a href="https://maps.app.goo.gl/gj72DoxeAVhTFgsy5 ">Chicago, IL</a>
🏠 Ресторан
🧾 Продукты готовы, можно купить сразу
⏰ 10:00 – 22:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/36 ">Меню</a> (в комментариях)
📞 +17733673258
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "TAKU-FOOD",
		Lat:  41.98429200,
		Lng:  -87.69751100,
		TextUser: `🍽️ <b>TAKU FOOD</b>
📍 <a href="https://www.google.com/maps?q=41.98429200 ,-87.69751100">Chicago, IL</a>
🏠 Ресторан
🧾 Продукты готовы, можно купить сразу
⏰ 08:00 – 23:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/37 ">Меню</a> (в комментариях)
📞 +12247600211  +17736812626
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>TAKU FOOD</b>
📍 <a href="https://www.google.com/maps?q=41.98429200 ,-87.69751100">Chicago, IL</a>
🏠 Ресторан
🧾 Продукты готовы, можно купить сразу
⏰ 08:00 – 23:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/37 ">Меню</a> (в комментариях)
📞 +12247600211  +17736812626
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "KAZAN-KEBAB",
		Lat:  41.77922600,
		Lng:  -88.34295400,
		TextUser: `🍽️ <b>KAZAN KEBAB</b>
📍 <a href="https://www.google.com/maps?q=41.77922600 ,-88.34295400">Chicago, IL</a>
🏠 Домашняя кухня на вынос
🧾 Продукты готовы, можно купить сразу
⏰ 24/7
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/38 ">Меню</a> (в комментариях)
📞 +15517869980
📱 Telegram: @Ali071188, @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>KAZAN KEBAB</b>
📍 <a href="https://www.google.com/maps?q=41.77922600 ,-88.34295400">Chicago, IL</a>
🏠 Домашняя кухня на вынос
🧾 Продукты готовы, можно купить сразу
⏰ 24/7
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/38 ">Меню</a> (в комментариях)
📞 +15517869980
📱 Telegram: @Ali071188, @MYHALAL_FOOD`,
	},
	{
		Name: "MAKSAT-FOOD-TRUCK",
		Lat:  45.52630600,
		Lng:  -122.63703900,
		TextUser: `🍽️ <b>MAKSAT FOOD TRUCK</b>
📍 <a href="https://www.google.com/maps?q=45.52630600 ,-122.63703900">Portland, OR</a>
🚛 Фудтрак
🧾 Продукты готовы, можно купить сразу
⏰ 10:00 – 23:00
🚘 Доставка бесплатная
📋 <a href="https://t.me/myhalalmenu/39 ">Меню</a> (в комментариях)
📞 +13602108483
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>MAKSAT FOOD TRUCK</b>
📍 <a href="https://www.google.com/maps?q=45.52630600 ,-122.63703900">Portland, OR</a>
🚛 Фудтрак
🧾 Продукты готовы, можно купить сразу
⏰ 10:00 – 23:00
🚘 Доставка бесплатная
📋 <a href="https://t.me/myhalalmenu/39 ">Меню</a> (в комментариях)
📞 +13602108483
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "NAVAT-PDX",
		Lat:  45.54936400,
		Lng:  -122.66185700,
		TextUser: `🍽️ <b>NAVAT PDX</b>
📍 <a href="https://www.google.com/maps?q=45.54936400 ,-122.66185700">Portland, OR</a>
🚛 Фудтрак
🧾 Продукты готовы, можно купить сразу
⏰ 11:00 – 22:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/40 ">Меню</a> (в комментариях)
📞 +14254282011  +17253774764
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>NAVAT PDX</b>
📍 <a href="https://www.google.com/maps?q=45.54936400 ,-122.66185700">Portland, OR</a>
🚛 Фудтрак
🧾 Продукты готовы, можно купить сразу
⏰ 11:00 – 22:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/40 ">Меню</a> (в комментариях)
📞 +14254282011  +17253774764
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "OSH-RESTAURANT-AND-GRILL",
		Lat:  36.11125400,
		Lng:  -86.74126300,
		TextUser: `🍽️ <b>OSH RESTAURANT AND GRILL</b>
📍 <a href="https://www.google.com/maps?q=36.11125400 ,-86.74126300">Nashville, TN</a>
🏠 Ресторан
🧾 Заказы до 21:00
⏰ Вт–Вс: 11:00 – 21:00 | Пн: выходной
🚘 Доставка: 10:00 – 02:00
📋 <a href="https://t.me/myhalalmenu/42 ">Меню</a> (в комментариях)
📞 +16157102288  +16159684444  +16157129985
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>OSH RESTAURANT AND GRILL</b>
📍 <a href="https://www.google.com/maps?q=36.11125400 ,-86.74126300">Nashville, TN</a>
🏠 Ресторан
🧾 Заказы до 21:00
⏰ Вт–Вс: 11:00 – 21:00 | Пн: выходной
🚘 Доставка: 10:00 – 02:00
📋 <a href="https://t.me/myhalalmenu/42 ">Меню</a> (в комментариях)
📞 +16157102288  +16159684444  +16157129985
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "BROOKLYN-PIZZA",
		Lat:  36.11934500,
		Lng:  -86.74898100,
		TextUser: `🍽️ <b>BROOKLYN PIZZA</b>
📍 <a href="https://www.google.com/maps?q=36.11934500 ,-86.74898100">Nashville, TN</a>
🏠 Кафе
🧾 Продукты готовы, можно купить сразу
⏰ 10:00 – 22:00
🚘 Доставка: 24/7 — $1 за милю
📋 <a href="https://t.me/myhalalmenu/43 ">Меню</a> (в комментариях)
📞 +16159552222  +16159257070
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>BROOKLYN PIZZA</b>
📍 <a href="https://www.google.com/maps?q=36.11934500 ,-86.74898100">Nashville, TN</a>
🏠 Кафе
🧾 Продукты готовы, можно купить сразу
⏰ 10:00 – 22:00
🚘 Доставка: 24/7 — $1 за милю
📋 <a href="https://t.me/myhalalmenu/43 ">Меню</a> (в комментариях)
📞 +16159552222  +16159257070
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "KAMOLA-OSHXONASI",
		Lat:  35.96075200,
		Lng:  -83.92075000,
		TextUser: `🍽️ <b>KAMOLA OSHXONASI</b>
📍 <a href="https://maps.app.goo.gl/Z83tPnCtbYSxLuCL9 ">Knoxville, TN</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 4–5 ч до доставки
⏰ 09:00 – 22:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/44 ">Меню</a> (в комментариях)
📞 +18654100845
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>KAMOLA OSHXONASI</b>
📍 <a href="https://maps.app.goo.gl/Z83tPnCtbYSxLuCL9 ">Knoxville, TN</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 4–5 ч до доставки
⏰ 09:00 – 22:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/44 ">Меню</a> (в комментариях)
📞 +18654100845
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "UZBEGIM-RESTAURANT",
		Lat:  36.16266400,
		Lng:  -86.78160200,
		TextUser: `🍽️ <b>UZBEGIM RESTAURANT</b>
📍 <a href="https://maps.app.goo.gl/9U3e96s2EmA6sUMG6 ">Nashville, TN</a>
🏠 Кафе
🧾 Продукты готовы, можно купить сразу
⏰ Время уточняется
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/45 ">Меню</a> (в комментариях)
📞 +13476138691
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>UZBEGIM RESTAURANT</b>
📍 <a href="https://maps.app.goo.gl/9U3e96s2EmA6sUMG6 ">Nashville, TN</a>
🏠 Кафе
🧾 Продукты готовы, можно купить сразу
⏰ Время уточняется
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/45 ">Меню</a> (в комментариях)
📞 +13476138691
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "BARAKAT-HALAL-FOOD",
		Lat:  29.78456000,
		Lng:  -95.80117000,
		TextUser: `🍽️ <b>BARAKAT HALAL FOOD</b>
📍 <a href="https://www.google.com/maps?q=29.78456000 ,-95.80117000">Houston, TX</a>
🏠 Фудтрак
🧾 Продукты готовы, можно купить сразу
⏰ 24/7
🚘 Доставка 24/7
📋 <a href="https://t.me/myhalalmenu/46 ">Меню</a> (в комментариях)
📞 +13463772939
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>BARAKAT HALAL FOOD</b>
📍 <a href="https://www.google.com/maps?q=29.78456000 ,-95.80117000">Houston, TX</a>
🏠 Фудтрак
🧾 Продукты готовы, можно купить сразу
⏰ 24/7
🚘 Доставка 24/7
📋 <a href="https://t.me/myhalalmenu/46 ">Меню</a> (в комментариях)
📞 +13463772939
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "DIYAR-HOUSTON-FOOD",
		Lat:  29.77985100,
		Lng:  -95.88196500,
		TextUser: `🍽️ <b>DIYAR HOUSTON FOOD</b>
📍 <a href="https://www.google.com/maps?q=29.77985100 ,-95.88196500">Houston, TX</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 4–5 ч до доставки
⏰ 09:30 – 23:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/47 ">Меню</a> (в комментариях)
📞 +13462740363
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>DIYAR HOUSTON FOOD</b>
📍 <a href="https://www.google.com/maps?q=29.77985100 ,-95.88196500">Houston, TX</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 4–5 ч до доставки
⏰ 09:30 – 23:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/47 ">Меню</a> (в комментариях)
📞 +13462740363
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "CARAVAN-HOUSE",
		Lat:  41.04526200,
		Lng:  -81.58033400,
		TextUser: `🍽️ <b>CARAVAN HOUSE</b>
📍 <a href="https://www.google.com/maps?q=41.04526200 ,-81.58033400">Akron, OH</a>
🏠 Ресторан рядом с AMAZON
🧾 Продукты готовы, можно купить сразу
⏰ 09:00 – 23:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/48 ">Меню</a> (в комментариях)
📞 +14405755555  +12344020202
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>CARAVAN HOUSE</b>
📍 <a href="https://www.google.com/maps?q=41.04526200 ,-81.58033400">Akron, OH</a>
🏠 Ресторан рядом с AMAZON
🧾 Продукты готовы, можно купить сразу
⏰ 09:00 – 23:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/48 ">Меню</a> (в комментариях)
📞 +14405755555  +12344020202
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "CHAYHANA-PERRYSBURG",
		Lat:  41.57081200,
		Lng:  -83.62053800,
		TextUser: `🍽️ <b>CHAYHANA</b>
📍 Perrysburg / Toledo, OH
🏠 Ресторан
🧾 Заказы за 4–5 ч до доставки
⏰ 08:00 – 00:00
🚘 Доставка через Uber / DoorDash
📋 <a href="https://t.me/myhalalmenu/49 ">Меню</a> (в комментариях)
📞 +14196034800
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>CHAYHANA</b>
📍 Perrysburg / Toledo, OH
🏠 Ресторан
🧾 Заказы за 4–5 ч до доставки
⏰ 08:00 – 00:00
🚘 Доставка через Uber / DoorDash
📋 <a href="https://t.me/myhalalmenu/49 ">Меню</a> (в комментариях)
📞 +14196034800
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "TASHKENTFOOD-HALAL",
		Lat:  39.44555600,
		Lng:  -84.20035400,
		TextUser: `🍽️ <b>Tashkentfood Xalal</b>
📍 <a href="https://maps.app.goo.gl/8aKnspJrH5vPfMq79 ">Lebanon, OH</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 2 ч до получения
⏰ 08:00 – 21:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/50 ">Меню</a> (в комментариях)
📞 +15133321404
📱 Telegram: @MYHALAL_FOOD, @Tashkent halal food Ohio`,
		TextChannel: `🍽️ <b>Tashkentfood Xalal</b>
📍 <a href="https://maps.app.goo.gl/8aKnspJrH5vPfMq79 ">Lebanon, OH</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 2 ч до получения
⏰ 08:00 – 21:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/50 ">Меню</a> (в комментариях)
📞 +15133321404
📱 Telegram: @MYHALAL_FOOD, @Tashkent halal food Ohio`,
	},
	{
		Name: "NUR-KITCHEN",
		Lat:  30.43137000,
		Lng:  -97.75393400,
		TextUser: `🍽️ <b>NUR KITCHEN</b>
📍 <a href="https://www.google.com/maps?q=30.43137000 ,-97.75393400">Austin, TX</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 3–4 ч до доставки
⏰ 09:00 – 21:00
🚘 Доставка: бесплатно по Austin, Pflugerville, San Marcos
📋 <a href="https://t.me/myhalalmenu/53 ">Меню</a> (в комментариях)
📞 +17377078330
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>NUR KITCHEN</b>
📍 <a href="https://www.google.com/maps?q=30.43137000 ,-97.75393400">Austin, TX</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 3–4 ч до доставки
⏰ 09:00 – 21:00
🚘 Доставка: бесплатно по Austin, Pflugerville, San Marcos
📋 <a href="https://t.me/myhalalmenu/53 ">Меню</a> (в комментариях)
📞 +17377078330
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "MAZALI-CHARLOTTE-OSHXONASI",
		Lat:  35.23408200,
		Lng:  -80.87282000,
		TextUser: `🍽️ <b>MAZALI CHARLOTTE OSHXONASI</b>
📍 <a href="https://www.google.com/maps?q=35.23408200 ,-80.87282000">Charlotte, NC</a>
🏠 Ресторан
🧾 Заказы за 3–4 ч до доставки
⏰ Пн–Пт: 11:00 – 20:00 | Сб–Вс: выходной
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/54 ">Меню</a> (в комментариях)
📞 +13477856222  +13476666930
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>MAZALI CHARLOTTE OSHXONASI</b>
📍 <a href="https://www.google.com/maps?q=35.23408200 ,-80.87282000">Charlotte, NC</a>
🏠 Ресторан
🧾 Заказы за 3–4 ч до доставки
⏰ Пн–Пт: 11:00 – 20:00 | Сб–Вс: выходной
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/54 ">Меню</a> (в комментариях)
📞 +13477856222  +13476666930
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "NND-FOOD",
		Lat:  35.25497600,
		Lng:  -80.97975000,
		TextUser: `🍽️ <b>N.N.D FOOD</b>
📍 <a href="https://www.google.com/maps?q=35.25497600 ,-80.97975000">Charlotte, NC</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 2–3 ч до доставки
⏰ 24/7
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/55 ">Меню</a> (в комментариях)
📞 +17045764025  +17046191145  +19802393354
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>N.N.D FOOD</b>
📍 <a href="https://www.google.com/maps?q=35.25497600 ,-80.97975000">Charlotte, NC</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 2–3 ч до доставки
⏰ 24/7
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/55 ">Меню</a> (в комментариях)
📞 +17045764025  +17046191145  +19802393354
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "AFSONA",
		Lat:  40.63575300,
		Lng:  -73.97448900,
		TextUser: `🍽️ <b>Afsona</b>
📍 <a href="https://www.google.com/maps?q=40.63575300 ,-73.97448900">Brooklyn, NY</a>
🏠 Ресторан
🧾 Заказы заранее, еду можно забирать
⏰ 06:00 – 23:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/57 ">Меню</a> (в комментариях)
📞 +17186333006  +19296224444  +19294002252
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>Afsona</b>
📍 <a href="https://www.google.com/maps?q=40.63575300 ,-73.97448900">Brooklyn, NY</a>
🏠 Ресторан
🧾 Заказы заранее, еду можно забирать
⏰ 06:00 – 23:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/57 ">Меню</a> (в комментариях)
📞 +17186333006  +19296224444  +19294002252
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "UZBEKISTAN-TAOMLARI",
		Lat:  40.09541213,
		Lng:  -75.04420414,
		TextUser: `🍽️ <b>UZBEKISTAN TAOMLARI</b>
📍 <a href="https://www.google.com/maps?q=40.09541213 ,-75.04420414">Bustleton, PA</a>
🏠 Домашняя кухня на вынос
🧾 Заказы заранее
⏰ Время уточняется
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/58 ">Меню</a> (в комментариях)
📞 +12672442371
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>UZBEKISTAN TAOMLARI</b>
📍 <a href="https://www.google.com/maps?q=40.09541213 ,-75.04420414">Bustleton, PA</a>
🏠 Домашняя кухня на вынос
🧾 Заказы заранее
⏰ Время уточняется
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/58 ">Меню</a> (в комментариях)
📞 +12672442371
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "BARAKAT-KAZAKH-CUISINE",
		Lat:  34.11959200,
		Lng:  -83.76195000,
		TextUser: `🍽️ <b>Barakat Казахская Cuisine</b>
📍 <a href="https://www.google.com/maps?q=34.11959200 ,-83.76195000">Braselton, GA</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 2–3 ч до доставки
⏰ 09:00 – 18:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/59 ">Меню</a> (в комментариях)
📞 +14706689307
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>Barakat Казахская Cuisine</b>
📍 <a href="https://www.google.com/maps?q=34.11959200 ,-83.76195000">Braselton, GA</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 2–3 ч до доставки
⏰ 09:00 – 18:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/59 ">Меню</a> (в комментариях)
📞 +14706689307
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "VIRGINIA-DC-UZBEK-HALAL",
		Lat:  38.79516300,
		Lng:  -77.52366300,
		TextUser: `🍽️ <b>Virginia & DC Uzbek Halal Food</b>
📍 <a href="https://www.google.com/maps?q=38.79516300 ,-77.52366300">Virginia / DC Area</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 3–4 ч до доставки
⏰ 07:00 – 00:00
🚘 Доставка: I-66, I-95, I-81
📋 <a href="https://t.me/myhalalmenu/60 ">Меню</a> (в комментариях)
📞 +15716327034
📱 Telegram: @MYHALAL_FOOD, @virginia_halal_food`,
		TextChannel: `🍽️ <b>Virginia & DC Uzbek Halal Food</b>
📍 <a href="https://www.google.com/maps?q=38.79516300 ,-77.52366300">Virginia / DC Area</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 3–4 ч до доставки
⏰ 07:00 – 00:00
🚘 Доставка: I-66, I-95, I-81
📋 <a href="https://t.me/myhalalmenu/60 ">Меню</a> (в комментариях)
📞 +15716327034
📱 Telegram: @MYHALAL_FOOD, @virginia_halal_food`,
	},
	{
		Name: "ISLOM-BALTIMORE-FOOD",
		Lat:  39.36578700,
		Lng:  -76.75882500,
		TextUser: `🍽️ <b>ISLOM BALTIMORE FOOD</b>
📍 <a href="https://www.google.com/maps?q=39.36578700 ,-76.75882500">Baltimore, MD</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 3–4 ч до доставки
⏰ 07:00 – 18:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/61 ">Меню</a> (в комментариях)
📞 +15677070708
📱 Telegram: @MYHALAL_FOOD, @Madinakhonmd`,
		TextChannel: `🍽️ <b>ISLOM BALTIMORE FOOD</b>
📍 <a href="https://www.google.com/maps?q=39.36578700 ,-76.75882500">Baltimore, MD</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 3–4 ч до доставки
⏰ 07:00 – 18:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/61 ">Меню</a> (в комментариях)
📞 +15677070708
📱 Telegram: @MYHALAL_FOOD, @Madinakhonmd`,
	},
	{
		Name: "IRODA-OSHXONASI",
		Lat:  30.41205600,
		Lng:  -88.82872200,
		TextUser: `🍽️ <b>IRODA OSHXONASI</b>
📍 <a href="https://maps.app.goo.gl/wCDtog9z5zeqyAeY8 ">Ocean Springs, MS</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за день до доставки
⏰ 10:00 – 22:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/62 ">Меню</a> (в комментариях)
📞 +12282432635
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>IRODA OSHXONASI</b>
📍 <a href="https://maps.app.goo.gl/wCDtog9z5zeqyAeY8 ">Ocean Springs, MS</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за день до доставки
⏰ 10:00 – 22:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/62 ">Меню</a> (в комментариях)
📞 +12282432635
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "TASHKENT-CUISINE",
		Lat:  40.44291300,
		Lng:  -80.08243800,
		TextUser: `🍽️ <b>TASHKENT CUISINE</b>
📍 <a href="https://www.google.com/maps?q=40.44291300 ,-80.08243800">Pittsburgh, PA</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 2–3 ч до доставки
⏰ 10:00 – 22:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/63 ">Меню</a> (в комментариях)
📞 +14125190156
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>TASHKENT CUISINE</b>
📍 <a href="https://www.google.com/maps?q=40.44291300 ,-80.08243800">Pittsburgh, PA</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 2–3 ч до доставки
⏰ 10:00 – 22:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/63 ">Меню</a> (в комментариях)
📞 +14125190156
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "ARIZONA-HALAL-FOOD-2",
		Lat:  33.46083600,
		Lng:  -112.20724400,
		TextUser: `🍽️ <b>ARIZONA HALAL FOOD</b>
📍 <a href="https://www.google.com/maps?q=33.46083600 ,-112.20724400">Phoenix, AZ</a>
🏠 Кухня на вынос из дома
🧾 Заказы за 2–3 ч до доставки
⏰ 08:00 – 00:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/64 ">Меню</a> (в комментариях)
📞 +14806343188
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>ARIZONA HALAL FOOD</b>
📍 <a href="https://www.google.com/maps?q=33.46083600 ,-112.20724400">Phoenix, AZ</a>
🏠 Кухня на вынос из дома
🧾 Заказы за 2–3 ч до доставки
⏰ 08:00 – 00:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/64 ">Меню</a> (в комментариях)
📞 +14806343188
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "SILK-ROAD-UZBEK-KAZAKH",
		Lat:  34.05223500,
		Lng:  -117.60254700,
		TextUser: `🍽️ <b>SILK ROAD UZBEK - KAZAKH kitchen</b>
📍 <a href="https://maps.app.goo.gl/LbdR5qiVbxSYt4F49 ">Ontario, CA (TA Truck Stop)</a>
🚛 Фудтрак
🧾 Блюда готовы к выдаче
⏰ 08:00 – 23:00
🚘 Доставка до 50 миль
📋 <a href="https://t.me/myhalalmenu/65 ">Меню</a> (в комментариях)
📞 +18722221736
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>SILK ROAD UZBEK - KAZAKH kitchen</b>
📍 <a href="https://maps.app.goo.gl/LbdR5qiVbxSYt4F49 ">Ontario, CA (TA Truck Stop)</a>
🚛 Фудтрак
🧾 Блюда готовы к выдаче
⏰ 08:00 – 23:00
🚘 Доставка до 50 миль
📋 <a href="https://t.me/myhalalmenu/65 ">Меню</a> (в комментариях)
📞 +18722221736
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "HALAL-FOOD-IN-NASHVILLE",
		Lat:  36.04294500,
		Lng:  -86.74166700,
		TextUser: `🍽️ <b>HALAL FOOD IN NASHVILLE</b>
📍 <a href="https://www.google.com/maps?q=36.04294500 ,-86.74166700">Nashville, TN</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 30 мин до доставки
⏰ 07:00 – 23:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/66 ">Меню</a> (в комментариях)
📞 +16156913309
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>HALAL FOOD IN NASHVILLE</b>
📍 <a href="https://www.google.com/maps?q=36.04294500 ,-86.74166700">Nashville, TN</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 30 мин до доставки
⏰ 07:00 – 23:00
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/66 ">Меню</a> (в комментариях)
📞 +16156913309
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "HALOL-FOOD-MUHAMMADAMIN-ASAKA",
		Lat:  36.18959100,
		Lng:  -86.47507800,
		TextUser: `🍽️ <b>HALOL FOOD MUHAMMADAMIN ASAKA</b>
📍 <a href="https://www.google.com/maps?q=36.18959100 ,-86.47507800">Nashville, TN</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 2 ч до доставки
⏰ 24/7
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/67 ">Меню</a> (в комментариях)
📞 +12159296717  +18352059595
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>HALOL FOOD MUHAMMADAMIN ASAKA</b>
📍 <a href="https://www.google.com/maps?q=36.18959100 ,-86.47507800">Nashville, TN</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 2 ч до доставки
⏰ 24/7
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/67 ">Меню</a> (в комментариях)
📞 +12159296717  +18352059595
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "UZBEK-FOOD-MINNESOTA",
		Lat:  44.97775300,
		Lng:  -93.26501100,
		TextUser: `🍽️ <b>UZBEK FOOD MINNESOTA</b>
📍 Minneapolis, MN
🏠 Кухня на вынос из дома
🧾 Заказы за 4–5 ч до доставки
⏰ 08:00 – 22:00
🚘 Доставка есть
📋 Меню: смотреть в комментариях
📞 +16513525551
📱 Telegram: @Manzura_Burkhan, @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>UZBEK FOOD MINNESOTA</b>
📍 Minneapolis, MN
🏠 Кухня на вынос из дома
🧾 Заказы за 4–5 ч до доставки
⏰ 08:00 – 22:00
🚘 Доставка есть
📋 Меню: смотреть в комментариях
📞 +16513525551
📱 Telegram: @Manzura_Burkhan, @MYHALAL_FOOD`,
	},
	{
		Name: "OASIS-DLYA-TRAKEROV",
		Lat:  32.77666500,
		Lng:  -96.79698900,
		TextUser: `🍽️ <b>ОАЗИС ДЛЯ ТРАКЕРОВ</b>
📍 Dallas, TX
🏠 Доставка свежей домашней еды к вашей парковке (до 30 миль)
✨ Условия доставки:
— Минимум $30
— Доставка $15
— Бесплатно от $250
🧾 100% халяль: борщи, плов, пельмени, салаты, выпечка
🚚 Заказ за 3–4 ч до получения
💰 Скидки постоянным
🌐 <a href="https://t.me/oasiseda ">Меню</a>
📞 +13478881927
📱 Telegram: https://t.me/oasiseda , @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>ОАЗИС ДЛЯ ТРАКЕРОВ</b>
📍 Dallas, TX
🏠 Доставка свежей домашней еды к вашей парковке (до 30 миль)
✨ Условия доставки:
— Минимум $30
— Доставка $15
— Бесплатно от $250
🧾 100% халяль: борщи, плов, пельмени, салаты, выпечка
🚚 Заказ за 3–4 ч до получения
💰 Скидки постоянным
🌐 <a href="https://t.me/oasiseda ">Меню</a>
📞 +13478881927
📱 Telegram: https://t.me/oasiseda , @MYHALAL_FOOD`,
	},
	{
		Name: "GOLDEN-BY-NUSAYBA",
		Lat:  39.92883400,
		Lng:  -74.23729300,
		TextUser: `🍽️ <b>GOLDEN BY NUSAYBA</b>
📍 <a href="https://maps.app.goo.gl/N58gFq6UrewBrBWm7 ">New Jersey, Lakewood</a>
🏠 Домашняя кухня
🧾 Готовлю по желанию клиента
⏰ 08:00 – 00:00
🚘 Доставка есть
📋 Меню: смотреть в Instagram
📞 +13478137000
📱 Instagram: @golden_by_nusayba_nj`,
		TextChannel: `🍽️ <b>GOLDEN BY NUSAYBA</b>
📍 <a href="https://maps.app.goo.gl/N58gFq6UrewBrBWm7 ">New Jersey, Lakewood</a>
🏠 Домашняя кухня
🧾 Готовлю по желанию клиента
⏰ 08:00 – 00:00
🚘 Доставка есть
📋 Меню: смотреть в Instagram
📞 +13478137000
📱 Instagram: @golden_by_nusayba_nj`,
	},
	{
		Name: "UZBEKISTAN-RESTAURANT-CINCINNATI",
		Lat:  39.10311800,
		Lng:  -84.51202000,
		TextUser: `🍽️ <b>UZBEKISTAN RESTAURANT</b>
📍 <a href="https://maps.app.goo.gl/28d42BXtNPUZ9D7GA ">Cincinnati Ohio</a>
🏠 Домашняя кухня
🧾 Заказы за 3–4 ч до доставки
⏰ 10:00 – 22:00
🚘 Доставка 24/7
📋 <a href="https://t.me/myhalalmenu/72 ">Меню</a>
📞 +12674230301
📱 Telegram: @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>UZBEKISTAN RESTAURANT</b>
📍 <a href="https://maps.app.goo.gl/28d42BXtNPUZ9D7GA ">Cincinnati Ohio</a>
🏠 Домашняя кухня
🧾 Заказы за 3–4 ч до доставки
⏰ 10:00 – 22:00
🚘 Доставка 24/7
📋 <a href="https://t.me/myhalalmenu/72 ">Меню</a>
📞 +12674230301
📱 Telegram: @MYHALAL_FOOD`,
	},
	{
		Name: "BISMILLAH-HALAL-FOOD",
		Lat:  41.87811400,
		Lng:  -87.62979800,
		TextUser: `🍽️ <b>Bismillah HALAL FOOD</b>
📍 <a href="https://maps.app.goo.gl/az7BJLtakcbejw4K6 ">Chicago IL</a>
🏠 Домашняя кухня
🧾 Заказы за 3–4 ч до доставки
⏰ 24/7
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/73 ">Меню</a>
📞 +14075957655
`,
		TextChannel: `🍽️ <b>Bismillah HALAL FOOD</b>
📍 <a href="https://maps.app.goo.gl/az7BJLtakcbejw4K6 ">Chicago IL</a>
🏠 Домашняя кухня
🧾 Заказы за 3–4 ч до доставки
⏰ 24/7
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/73 ">Меню</a>
📞 +14075957655
`,
	},
	{
		Name: "KHOZYAYUSHKA-UZBEK-KITCHEN",
		Lat:  36.07954100,
		Lng:  -86.69676900,
		TextUser: `🍽️ <b>Хозяюшка Uzbek kitchen</b>
📍 <a href="https://www.google.com/maps?q=36.07954100 ,-86.69676900">Nashville, TN</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 2–3 ч до доставки
⏰ 24/7
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/78 ">Меню</a> (в комментариях)
📞 +16159799172
📱 Telegram: @Xozayush, @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>Хозяюшка Uzbek kitchen</b>
📍 <a href="https://www.google.com/maps?q=36.07954100 ,-86.69676900">Nashville, TN</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 2–3 ч до доставки
⏰ 24/7
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/78 ">Меню</a> (в комментариях)
📞 +16159799172
📱 Telegram: @Xozayush, @MYHALAL_FOOD`,
	},
	{
		Name: "ATLAS-KITCHEN",
		Lat:  38.85842400,
		Lng:  -94.81290200,
		TextUser: `🍽️ <b>ATLAS KITCHEN</b>
📍 <a href="https://www.google.com/maps?q=38.85842400 ,-94.81290200">Kansas City, KS/MO</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 4–5 ч до доставки
⏰ 15:00 – 22:00
🚘 Доставка: Договорная
📋 <a href="https://t.me/myhalalmenu/81 ">Меню</a> (в комментариях)
📞 +19134869109  +19899544770
📱 Telegram: @Sabru_jamil1, @Bek_KC`,
		TextChannel: `🍽️ <b>ATLAS KITCHEN</b>
📍 <a href="https://www.google.com/maps?q=38.85842400 ,-94.81290200">Kansas City, KS/MO</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 4–5 ч до доставки
⏰ 15:00 – 22:00
🚘 Доставка: Договорная
📋 <a href="https://t.me/myhalalmenu/81 ">Меню</a> (в комментариях)
📞 +19134869109  +19899544770
📱 Telegram: @Sabru_jamil1, @Bek_KC`,
	},
	{
		Name: "RAIANA-HALAL-FOOD",
		Lat:  38.58157200,
		Lng:  -121.49440000,
		TextUser: `🍽️ <b>RAIANA halal food</b>
📍 <a href="https://maps.app.goo.gl/bgCVHfHMcR3hfdzx5 ">Sacramento, CA</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 2–3 ч до доставки
⏰ 24/7
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/79 ">Меню</a> (в комментариях)
📞 +17732567187  +1773256893
📱 Telegram: @Raiana_halal_food, @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>RAIANA halal food</b>
📍 <a href="https://maps.app.goo.gl/bgCVHfHMcR3hfdzx5 ">Sacramento, CA</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 2–3 ч до доставки
⏰ 24/7
🚘 Доставка есть
📋 <a href="https://t.me/myhalalmenu/79 ">Меню</a> (в комментариях)
📞 +17732567187  +1773256893
📱 Telegram: @Raiana_halal_food, @MYHALAL_FOOD`,
	},
	{
		Name: "HALAL-JASMIN-KITCHEN",
		Lat:  39.09972700,
		Lng:  -94.57856700,
		TextUser: `🍽️ <b>Halal Jasmin Kitchen</b>
📍 <a href="https://maps.app.goo.gl/MTc7JWSzKxafXtH27 ">Kansas</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 1.5–2 ч до доставки
⏰ 09:00 – 00:00
🚘 Бесплатная доставка по Kansas City
📋 <a href="https://t.me/myhalalmenu/80 ">Меню</a> (в комментариях)
📞 +18162991870
📱 Telegram: @Rozazhasmin, @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>Halal Jasmin Kitchen</b>
📍 <a href="https://maps.app.goo.gl/MTc7JWSzKxafXtH27 ">Kansas</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 1.5–2 ч до доставки
⏰ 09:00 – 00:00
🚘 Бесплатная доставка по Kansas City
📋 <a href="https://t.me/myhalalmenu/80 ">Меню</a> (в комментариях)
📞 +18162991870
📱 Telegram: @Rozazhasmin, @MYHALAL_FOOD`,
	},
	{
		Name: "YASINA-FOOD",
		Lat:  28.53833600,
		Lng:  -81.37923400,
		TextUser: `🍽️ <b>Yasina Food</b>
📍 <a href="https://maps.app.goo.gl/eVZw1iT74fqb9LSMA ">Orlando FL</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 3–4 ч до доставки
⏰ 09:00 – 22:00
🚘 Доставка по тракстопам
📋 <a href="https://t.me/myhalalmenu/82 ">Меню</a> (в комментариях)
📞 +16892389299
📱 Telegram: @yasishfood, @MYHALAL_FOOD`,
		TextChannel: `🍽️ <b>Yasina Food</b>
📍 <a href="https://maps.app.goo.gl/eVZw1iT74fqb9LSMA ">Orlando FL</a>
🏠 Домашняя кухня на вынос
🧾 Заказы за 3–4 ч до доставки
⏰ 09:00 – 22:00
🚘 Доставка по тракстопам
📋 <a href="https://t.me/myhalalmenu/82 ">Меню</a> (в комментариях)
📞 +16892389299
📱 Telegram: @yasishfood, @MYHALAL_FOOD`,
	},
}
