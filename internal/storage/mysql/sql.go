package mysql

const deleteHotelsSQL = `DELETE FROM hotels`

const insertHotelsPrefix = `
INSERT INTO hotels
  (row_idx, name, destination, price, ratings, amenities, sentiment_score)
VALUES `

const selectHotelsSQL = `
SELECT row_idx, name, destination, price, ratings, amenities, sentiment_score
FROM hotels
ORDER BY row_idx`
