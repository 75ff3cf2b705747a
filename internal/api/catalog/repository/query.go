package catalogRepository

const (
	queryLoadRestaurants = `
SELECT name, cuisine, dietary_options, max_guests, availability, rating, location
FROM Restaurants
    WHERE is_active = :is_active
ORDER BY position, name`
)
